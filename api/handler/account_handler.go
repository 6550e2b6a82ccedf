package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rajib3777/academia/api/middleware"
	"github.com/rajib3777/academia/internal/dto"
	"github.com/rajib3777/academia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	Service  *service.AccountService
	Validate *validator.Validate
}

func NewAccountHandler(svc *service.AccountService, validate *validator.Validate) *AccountHandler {
	return &AccountHandler{Service: svc, Validate: validate}
}

func (h *AccountHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}

	user, err := h.Service.Register(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, map[string]any{
			"message": "User registered successfully.",
			"user_id": user.ID.String(),
		})
	case errors.Is(err, service.ErrPhoneNotVerified):
		return writeFieldErrors(c, map[string][]string{
			"mobile_number": {"Phone number has not been verified. Please verify your phone number first."},
		})
	case errors.Is(err, service.ErrPhoneVerificationExpired):
		return writeFieldErrors(c, map[string][]string{
			"mobile_number": {"OTP for this phone number has expired. Please request a new OTP."},
		})
	case errors.Is(err, service.ErrMobileAlreadyTaken):
		return writeFieldErrors(c, map[string][]string{
			"mobile_number": {"user with this mobile number already exists."},
		})
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrConflictingRoles):
		return writeFieldErrors(c, map[string][]string{
			"roles": {err.Error()},
		})
	case errors.Is(err, service.ErrInvalidInput):
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	default:
		return writeErrorMessage(c, http.StatusInternalServerError, "Something wrong! User can not register.")
	}
}

func (h *AccountHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}

	result, err := h.Service.Login(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, result)
	case errors.Is(err, service.ErrUserNotFound):
		return writeErrorMessage(c, http.StatusBadRequest, "User does not exist.")
	case errors.Is(err, service.ErrIncorrectPassword):
		return writeErrorMessage(c, http.StatusBadRequest, "Incorrect password.")
	case errors.Is(err, service.ErrInvalidInput):
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	default:
		return writeErrorMessage(c, http.StatusInternalServerError, "Something wrong! Login failed.")
	}
}

func (h *AccountHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeErrorMessage(c, http.StatusUnauthorized, "unauthorized")
	}
	user, err := h.Service.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return writeErrorMessage(c, http.StatusNotFound, "User does not exist.")
		}
		return writeErrorMessage(c, http.StatusInternalServerError, "Something wrong!")
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AccountHandler) ListUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	users, err := h.Service.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return writeErrorMessage(c, http.StatusInternalServerError, "Something wrong!")
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.UserResponseFromEntity(&users[i]))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *AccountHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
