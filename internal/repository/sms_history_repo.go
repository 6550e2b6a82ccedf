package repository

import (
	"context"
	"time"

	"github.com/rajib3777/academia/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SMSHistoryRepository interface {
	Create(ctx context.Context, history *entity.SMSHistory) error
	MarkSent(ctx context.Context, id uuid.UUID, response datatypes.JSON) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, statusCode *string, response datatypes.JSON) error
	ListByPhone(ctx context.Context, phoneNumber string, limit int) ([]entity.SMSHistory, error)
}

type smsHistoryRepository struct {
	db *gorm.DB
}

func NewSMSHistoryRepository(db *gorm.DB) SMSHistoryRepository {
	return &smsHistoryRepository{db: db}
}

func (r *smsHistoryRepository) Create(ctx context.Context, history *entity.SMSHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *smsHistoryRepository) MarkSent(ctx context.Context, id uuid.UUID, response datatypes.JSON) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.SMSHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":            entity.SMSStatusSent,
			"response_at":       &now,
			"provider_response": response,
		}).Error
}

func (r *smsHistoryRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, statusCode *string, response datatypes.JSON) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.SMSHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":             entity.SMSStatusFailed,
			"failed_reason":      &reason,
			"failed_status_code": statusCode,
			"response_at":        &now,
			"provider_response":  response,
		}).Error
}

func (r *smsHistoryRepository) ListByPhone(ctx context.Context, phoneNumber string, limit int) ([]entity.SMSHistory, error) {
	var histories []entity.SMSHistory
	query := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}
