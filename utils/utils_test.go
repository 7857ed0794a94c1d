package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 32)

	hash, err := GeneratePasswordHash("secret1", salt)
	require.NoError(t, err)

	assert.True(t, ValidatePassword("secret1", hash, salt))
	assert.False(t, ValidatePassword("secret2", hash, salt))

	other, err := GenerateSalt()
	require.NoError(t, err)
	assert.False(t, ValidatePassword("secret1", hash, other))
}

func TestSignature(t *testing.T) {
	p := Principal{ID: "c1", Email: "c1@customer.test", Role: "customer", Verified: true}

	tok, err := GenerateSignature(p, "s3cret", time.Hour)
	require.NoError(t, err)

	got, err := ValidateSignature(tok, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = ValidateSignature(tok, "other")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	expired, err := GenerateSignature(p, "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateSignature(expired, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestGenerateOtp(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		otp, expiry := GenerateOtp(now)
		assert.GreaterOrEqual(t, otp, 100000)
		assert.LessOrEqual(t, otp, 999999)
		assert.Equal(t, now.Add(30*time.Minute), expiry)
	}
}
