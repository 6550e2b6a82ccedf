package handler

import (
	"errors"
	"net/http"

	"github.com/rajib3777/academia/internal/dto"
	"github.com/rajib3777/academia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// OTPHandler exposes the send and verify endpoints. Both run without
// authentication: they bootstrap identity before any account exists.
type OTPHandler struct {
	Service  *service.OTPService
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewOTPHandler(svc *service.OTPService, validate *validator.Validate) *OTPHandler {
	return &OTPHandler{Service: svc, Validate: validate, Logger: logrus.StandardLogger()}
}

func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req dto.SendOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}

	err := h.Service.SendOTP(c.Request().Context(), req.PhoneNumber)
	switch {
	case err == nil:
		return writeMessage(c, http.StatusOK, "OTP sent successfully.")
	case errors.Is(err, service.ErrSMSDeliveryFailed):
		return writeErrorMessage(c, http.StatusBadRequest, "Something wrong! OTP can not send.")
	default:
		// Persistence and every other unexpected failure surfaces as the
		// generic creation error; the cause stays in the logs only.
		h.Logger.WithError(err).WithField("uri", c.Request().RequestURI).Error("otp issuance failed")
		return writeErrorMessage(c, http.StatusBadRequest, "Something wrong! OTP can not create.")
	}
}

func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}

	err := h.Service.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	switch {
	case err == nil:
		return writeMessage(c, http.StatusOK, "OTP verified successfully.")
	case errors.Is(err, service.ErrOTPNotFound):
		return writeErrorMessage(c, http.StatusNotFound, "Invalid phone number.")
	case errors.Is(err, service.ErrPhoneAlreadyVerified):
		return writeErrorMessage(c, http.StatusBadRequest, "Phone number already verified.")
	case errors.Is(err, service.ErrOTPExpired):
		return writeErrorMessage(c, http.StatusBadRequest, "OTP has expired.")
	case errors.Is(err, service.ErrInvalidOTP):
		return writeErrorMessage(c, http.StatusBadRequest, "Invalid OTP.")
	default:
		h.Logger.WithError(err).WithField("uri", c.Request().RequestURI).Error("otp verification failed")
		return writeErrorMessage(c, http.StatusBadRequest, "Something wrong! OTP can not verify.")
	}
}

func (h *OTPHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
