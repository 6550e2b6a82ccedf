package entity

import (
	"time"

	"github.com/google/uuid"
)

// User accounts are keyed by mobile number; a user only exists after that
// number passed OTP verification.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	MobileNumber string    `gorm:"type:varchar(15);uniqueIndex;not null"`
	Email        *string   `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:text;not null"`

	IsActive bool `gorm:"default:true"`

	Roles []Role `gorm:"many2many:user_roles"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) HasRole(name RoleName) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}
