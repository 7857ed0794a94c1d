package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// AdminAccount is the single operator account configured through the
// environment. Its password is hashed once at startup.
type AdminAccount struct {
	Email        string
	PasswordHash []byte
}

func (a *AdminAccount) Enabled() bool {
	return a != nil && a.Email != "" && len(a.PasswordHash) > 0
}

// SeedAdmin builds the admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Missing values leave the admin routes locked.
func SeedAdmin(cfg *Config) (*AdminAccount, error) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return &AdminAccount{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminAccount{Email: cfg.AdminEmail, PasswordHash: hash}, nil
}
