package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// GatewayResponse is the decoded body returned by the SMS provider.
type GatewayResponse struct {
	ResponseCode int    `json:"response_code"`
	MessageID    string `json:"message_id"`
	ErrorMessage string `json:"error_message"`

	// Raw holds the undecoded body for the history log.
	Raw []byte `json:"-"`
}

// GatewayClient delivers a single SMS through the external provider.
// A non-nil error covers network failures, non-2xx transport statuses and
// unparseable bodies; a decoded response with a non-202 response_code is
// returned without an error so the caller can log the provider's reason.
type GatewayClient interface {
	Send(ctx context.Context, phoneNumber, message string) (*GatewayResponse, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
