package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/repository"
	"github.com/rajib3777/academia/internal/utils"
)

// SMSSender is the boolean-outcome boundary to the SMS pipeline.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string, smsType entity.SMSType) bool
}

type OTPConfig struct {
	TTL        time.Duration
	CodeLength int
}

type OTPService struct {
	otps   repository.OTPRepository
	sms    SMSSender
	clock  Clock
	config OTPConfig
}

func NewOTPService(otps repository.OTPRepository, sms SMSSender, clock Clock, config OTPConfig) *OTPService {
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	if config.CodeLength == 0 {
		config.CodeLength = 6
	}
	return &OTPService{
		otps:   otps,
		sms:    sms,
		clock:  clock,
		config: config,
	}
}

// SendOTP generates a fresh code for the phone number and dispatches it.
// A previous code for the same number is overwritten and its verified flag
// reset. The record survives a failed dispatch so the caller can reissue.
func (s *OTPService) SendOTP(ctx context.Context, phoneNumber string) error {
	phoneNumber = utils.NormalizePhone(phoneNumber)
	if phoneNumber == "" {
		return ErrInvalidInput
	}

	code, err := utils.GenerateOTP(s.config.CodeLength)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOTPCreateFailed, err)
	}

	record := &entity.OTPVerification{
		PhoneNumber: phoneNumber,
		OTPCode:     code,
		IsVerified:  false,
		ExpiresAt:   s.now().Add(s.config.TTL),
	}
	if err := s.otps.Upsert(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPCreateFailed, err)
	}

	message := fmt.Sprintf("Your OTP is %s", code)
	if !s.sms.Send(ctx, phoneNumber, message, entity.SMSTypeOTP) {
		return ErrSMSDeliveryFailed
	}
	return nil
}

// VerifyOTP checks a submitted code. The checks run in a fixed order:
// missing record, already verified, expired, then code comparison. Only a
// full match writes anything.
func (s *OTPService) VerifyOTP(ctx context.Context, phoneNumber, code string) error {
	phoneNumber = utils.NormalizePhone(phoneNumber)

	record, err := s.otps.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrOTPNotFound
	}
	if record.IsVerified {
		return ErrPhoneAlreadyVerified
	}
	if record.IsExpired(s.now()) {
		return ErrOTPExpired
	}
	if record.OTPCode != code {
		return ErrInvalidOTP
	}
	return s.otps.MarkVerified(ctx, record.ID)
}

// RequireVerifiedPhone gates registration: the number must hold a verified
// OTP record that is still inside its validity window. A verification that
// sat around past the TTL forces a fresh OTP round.
func (s *OTPService) RequireVerifiedPhone(ctx context.Context, phoneNumber string) error {
	record, err := s.otps.FindByPhone(ctx, utils.NormalizePhone(phoneNumber))
	if err != nil {
		return err
	}
	if record == nil || !record.IsVerified {
		return ErrPhoneNotVerified
	}
	if record.IsExpired(s.now()) {
		return ErrPhoneVerificationExpired
	}
	return nil
}

func (s *OTPService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
