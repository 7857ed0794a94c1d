package utils

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// GenerateSalt returns a random per-account salt that is mixed into the
// password before bcrypt hashing.
func GenerateSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func GeneratePasswordHash(password, salt string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(salt+password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ValidatePassword(entered, storedHash, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(salt+entered)) == nil
}
