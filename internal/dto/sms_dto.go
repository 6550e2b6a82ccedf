package dto

import (
	"time"

	"github.com/rajib3777/academia/internal/entity"
)

type SMSHistoryResponse struct {
	ID               string     `json:"id"`
	PhoneNumber      string     `json:"phone_number"`
	Message          string     `json:"message"`
	SMSType          string     `json:"sms_type"`
	Status           string     `json:"status"`
	FailedReason     *string    `json:"failed_reason,omitempty"`
	FailedStatusCode *string    `json:"failed_status_code,omitempty"`
	SentAt           time.Time  `json:"sent_at"`
	ResponseAt       *time.Time `json:"response_at,omitempty"`
}

func SMSHistoryResponseFromEntity(history *entity.SMSHistory) SMSHistoryResponse {
	return SMSHistoryResponse{
		ID:               history.ID.String(),
		PhoneNumber:      history.PhoneNumber,
		Message:          history.Message,
		SMSType:          string(history.SMSType),
		Status:           string(history.Status),
		FailedReason:     history.FailedReason,
		FailedStatusCode: history.FailedStatusCode,
		SentAt:           history.SentAt,
		ResponseAt:       history.ResponseAt,
	}
}
