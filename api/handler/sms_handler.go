package handler

import (
	"net/http"
	"strconv"

	"github.com/rajib3777/academia/internal/dto"
	"github.com/rajib3777/academia/internal/service"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/labstack/echo/v4"
)

// SMSHistoryHandler exposes the delivery log for a phone number. The route
// is admin-only; the filter is a query parameter rather than a body.
type SMSHistoryHandler struct {
	Service *service.SMSService
}

func NewSMSHistoryHandler(svc *service.SMSService) *SMSHistoryHandler {
	return &SMSHistoryHandler{Service: svc}
}

func (h *SMSHistoryHandler) ListByPhone(c echo.Context) error {
	phone := utils.NormalizePhone(c.QueryParam("phone_number"))
	if phone == "" {
		return writeFieldErrors(c, map[string][]string{
			"phone_number": {"This field is required."},
		})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	histories, err := h.Service.HistoryFor(c.Request().Context(), phone, limit)
	if err != nil {
		return writeErrorMessage(c, http.StatusInternalServerError, "Something wrong!")
	}
	responses := make([]dto.SMSHistoryResponse, 0, len(histories))
	for i := range histories {
		responses = append(responses, dto.SMSHistoryResponseFromEntity(&histories[i]))
	}
	return c.JSON(http.StatusOK, responses)
}
