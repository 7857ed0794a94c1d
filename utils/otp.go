package utils

import (
	"math/rand"
	"time"
)

const OTPValidity = 30 * time.Minute

// GenerateOtp returns a six digit code and its expiry.
func GenerateOtp(now time.Time) (int, time.Time) {
	otp := rand.Intn(900000) + 100000
	return otp, now.Add(OTPValidity)
}
