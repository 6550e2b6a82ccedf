package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewValidator reports struct fields by their json names so validation
// errors match the request payload.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})
	return validate
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

func writeErrorMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

func writeFieldErrors(c echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusBadRequest, fields)
}

// writeValidationError renders validator failures as a per-field error map,
// e.g. {"phone_number": ["This field is required."]}.
func writeValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return writeErrorMessage(c, http.StatusBadRequest, err.Error())
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		name := fieldError.Field()
		fields[name] = append(fields[name], validationMessage(fieldError))
	}
	return writeFieldErrors(c, fields)
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldError.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fieldError.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return "This field is invalid."
	}
}
