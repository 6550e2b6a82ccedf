package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPVerification holds the current one-time code for a phone number.
// There is at most one row per phone number; re-sending an OTP replaces
// the code and resets the verified flag.
type OTPVerification struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	PhoneNumber string `gorm:"type:varchar(15);uniqueIndex;not null"`
	OTPCode     string `gorm:"type:varchar(6);not null"`

	IsVerified bool `gorm:"default:false;not null"`
	ExpiresAt  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *OTPVerification) IsExpired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
