package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// OTP issuance
	ErrOTPCreateFailed   = errors.New("otp record could not be created")
	ErrSMSDeliveryFailed = errors.New("otp sms could not be delivered")

	// OTP verification
	ErrOTPNotFound          = errors.New("no otp record for phone number")
	ErrPhoneAlreadyVerified = errors.New("phone number already verified")
	ErrOTPExpired           = errors.New("otp has expired")
	ErrInvalidOTP           = errors.New("invalid otp")

	// Accounts
	ErrPhoneNotVerified         = errors.New("phone number is not verified")
	ErrPhoneVerificationExpired = errors.New("phone verification has expired")
	ErrMobileAlreadyTaken       = errors.New("mobile number already registered")
	ErrUserNotFound             = errors.New("user does not exist")
	ErrIncorrectPassword        = errors.New("incorrect password")
	ErrInvalidRole              = errors.New("invalid role")
	ErrConflictingRoles         = errors.New("conflicting roles")
	ErrRoleLookupUnavailable    = errors.New("role lookup unavailable")
)
