package service

import (
	"context"
	"strconv"

	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const gatewayAcceptedCode = 202

// SMSService owns the history log around every outbound SMS. Callers only
// ever see a boolean outcome; gateway errors are absorbed here and recorded
// on the history row.
type SMSService struct {
	history repository.SMSHistoryRepository
	gateway GatewayClient
	logger  *logrus.Logger
}

func NewSMSService(history repository.SMSHistoryRepository, gateway GatewayClient, logger *logrus.Logger) *SMSService {
	if logger == nil {
		logger = logrus.New()
	}
	return &SMSService{
		history: history,
		gateway: gateway,
		logger:  logger,
	}
}

// Send dispatches one SMS and returns whether the provider accepted it.
func (s *SMSService) Send(ctx context.Context, phoneNumber, message string, smsType entity.SMSType) bool {
	record := &entity.SMSHistory{
		PhoneNumber: phoneNumber,
		Message:     message,
		SMSType:     smsType,
		Status:      entity.SMSStatusQueue,
	}
	if err := s.history.Create(ctx, record); err != nil {
		s.logger.WithError(err).WithField("phone_number", phoneNumber).
			Error("failed to create sms history record")
		return false
	}

	response, err := s.gateway.Send(ctx, phoneNumber, message)
	if err != nil {
		s.logger.WithError(err).WithField("phone_number", phoneNumber).
			Error("an error occurred while sending sms")
		s.markFailed(ctx, record, err.Error(), nil, nil)
		return false
	}

	if response.ResponseCode != gatewayAcceptedCode {
		reason := response.ErrorMessage
		if reason == "" {
			reason = "Unknown error"
		}
		code := strconv.Itoa(response.ResponseCode)
		s.logger.WithFields(logrus.Fields{
			"phone_number":  phoneNumber,
			"response_code": response.ResponseCode,
			"reason":        reason,
		}).Error("sms gateway rejected message")
		s.markFailed(ctx, record, reason, &code, response.Raw)
		return false
	}

	if err := s.history.MarkSent(ctx, record.ID, datatypes.JSON(response.Raw)); err != nil {
		s.logger.WithError(err).WithField("phone_number", phoneNumber).
			Error("failed to update sms history record")
	}
	return true
}

// HistoryFor returns the most recent delivery attempts for a phone number,
// newest first.
func (s *SMSService) HistoryFor(ctx context.Context, phoneNumber string, limit int) ([]entity.SMSHistory, error) {
	return s.history.ListByPhone(ctx, phoneNumber, limit)
}

func (s *SMSService) markFailed(ctx context.Context, record *entity.SMSHistory, reason string, statusCode *string, raw []byte) {
	if err := s.history.MarkFailed(ctx, record.ID, reason, statusCode, datatypes.JSON(raw)); err != nil {
		s.logger.WithError(err).WithField("phone_number", record.PhoneNumber).
			Error("failed to update sms history record")
	}
}
