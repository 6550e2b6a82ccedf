package repository

import (
	"context"
	"errors"

	"github.com/rajib3777/academia/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OTPRepository interface {
	Upsert(ctx context.Context, otp *entity.OTPVerification) error
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.OTPVerification, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

// Upsert keeps a single row per phone number. A conflicting insert replaces
// the code, resets the verified flag and refreshes the expiry; last write
// wins for concurrent sends to the same number.
func (r *otpRepository) Upsert(ctx context.Context, otp *entity.OTPVerification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"otp_code", "is_verified", "expires_at", "updated_at",
			}),
		}).
		Create(otp).Error
}

func (r *otpRepository) FindByPhone(ctx context.Context, phoneNumber string) (*entity.OTPVerification, error) {
	var otp entity.OTPVerification
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&otp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &otp, err
}

func (r *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.OTPVerification{}).
		Where("id = ?", id).
		Update("is_verified", true).
		Error
}
