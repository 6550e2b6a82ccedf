package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SMSType string

const (
	SMSTypeOTP          SMSType = "OTP"
	SMSTypePromo        SMSType = "Promo"
	SMSTypeNotification SMSType = "Notification"
	SMSTypeTransaction  SMSType = "Transaction"
	SMSTypeAccount      SMSType = "Account"
	SMSTypeOther        SMSType = "Other"
)

type SMSStatus string

const (
	SMSStatusQueue     SMSStatus = "Queue"
	SMSStatusSent      SMSStatus = "Sent"
	SMSStatusFailed    SMSStatus = "Failed"
	SMSStatusCancelled SMSStatus = "Canceled"
)

// SMSHistory is an append-only log of outbound SMS attempts. A row is
// written with status Queue before the gateway call and moved to Sent or
// Failed once the gateway responds.
type SMSHistory struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	PhoneNumber string    `gorm:"type:varchar(15);index;not null"`
	Message     string    `gorm:"type:text;not null"`
	SMSType     SMSType   `gorm:"type:varchar(20);default:'Other';not null"`
	Status      SMSStatus `gorm:"type:varchar(10);default:'Queue';not null"`

	FailedReason     *string `gorm:"type:text"`
	FailedStatusCode *string `gorm:"type:varchar(10)"`

	// Raw provider response body, when one was received.
	ProviderResponse datatypes.JSON

	SentAt     time.Time `gorm:"autoCreateTime"`
	ResponseAt *time.Time
	UpdatedAt  time.Time
}
