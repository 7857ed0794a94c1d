package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the custom JWT claims carried by every signature.
type Claims struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller, decoded from a signature.
type Principal struct {
	ID       string
	Email    string
	Role     string
	Verified bool
	Name     string
}

var ErrInvalidSignature = errors.New("invalid signature")

// GenerateSignature signs p into a token valid for ttl.
func GenerateSignature(p Principal, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:       p.ID,
		Email:    p.Email,
		Role:     p.Role,
		Verified: p.Verified,
		Name:     p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSignature verifies tokenStr and returns the principal it names.
func ValidateSignature(tokenStr, secret string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return Principal{}, ErrInvalidSignature
	}
	return Principal{
		ID:       claims.ID,
		Email:    claims.Email,
		Role:     claims.Role,
		Verified: claims.Verified,
		Name:     claims.Name,
	}, nil
}
