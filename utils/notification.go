package utils

import (
	"context"
	"log"
)

// OTPSender delivers a one-time passcode to a phone number.
type OTPSender interface {
	SendOTP(ctx context.Context, otp int, phone string) error
}

// LogOTPSender writes the code to the server log instead of an SMS gateway.
type LogOTPSender struct{}

func (LogOTPSender) SendOTP(_ context.Context, otp int, phone string) error {
	log.Printf("otp for +91%s: %06d", phone, otp)
	return nil
}
