package dto

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	OTP         string `json:"otp" validate:"required,max=6"`
}
