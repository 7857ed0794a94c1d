package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/configs"
	"fooddelivery/entity"
	"fooddelivery/repository"
	"fooddelivery/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrVendorExists          = errors.New("vendor already exists")
	ErrVendorNotFound        = errors.New("vendor not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrDeliveryUserNotFound  = errors.New("delivery user not found")
	ErrAdminLoginUnavailable = errors.New("admin login is not configured")
)

type AdminService struct {
	repos *repository.Repositories
	admin *configs.AdminAccount
	creds Credentials
}

func NewAdminService(repos *repository.Repositories, admin *configs.AdminAccount, creds Credentials) *AdminService {
	return &AdminService{repos: repos, admin: admin, creds: creds}
}

type CreateVendorInput struct {
	Name      string   `json:"name" binding:"required"`
	OwnerName string   `json:"ownerName" binding:"required"`
	FoodType  []string `json:"foodType"`
	Pincode   string   `json:"pincode" binding:"required"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6,max=40"`
}

type VerifyDeliveryUserInput struct {
	ID     string `json:"_id" binding:"required"`
	Status bool   `json:"status"`
}

// Login checks the configured admin account and signs an admin principal.
func (s *AdminService) Login(email, password string) (string, error) {
	if !s.admin.Enabled() {
		return "", ErrAdminLoginUnavailable
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.admin.Email || bcrypt.CompareHashAndPassword(s.admin.PasswordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.creds.Sign(utils.Principal{ID: "admin", Email: email, Role: entity.RoleAdmin, Verified: true})
}

func (s *AdminService) CreateVendor(ctx context.Context, in CreateVendorInput) (*entity.Vendor, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repos.Vendors.FindByEmail(ctx, email); err == nil {
		return nil, ErrVendorExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := utils.GeneratePasswordHash(in.Password, salt)
	if err != nil {
		return nil, err
	}

	foodType := in.FoodType
	if foodType == nil {
		foodType = []string{}
	}
	v := &entity.Vendor{
		Name:        strings.TrimSpace(in.Name),
		OwnerName:   strings.TrimSpace(in.OwnerName),
		FoodType:    foodType,
		Pincode:     strings.TrimSpace(in.Pincode),
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       email,
		Password:    hash,
		Salt:        salt,
		CoverImages: []string{},
		Foods:       []string{},
	}
	if err := s.repos.Vendors.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrVendorExists
		}
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return v, nil
}

func (s *AdminService) GetVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.repos.Vendors.List(ctx)
}

func (s *AdminService) GetVendorByID(ctx context.Context, id string) (*entity.Vendor, error) {
	v, err := s.repos.Vendors.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVendorNotFound
	}
	return v, err
}

func (s *AdminService) GetTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return s.repos.Transactions.List(ctx)
}

func (s *AdminService) GetTransactionByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := s.repos.Transactions.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	return t, err
}

// VerifyDeliveryUser sets the verified flag of a delivery user.
func (s *AdminService) VerifyDeliveryUser(ctx context.Context, in VerifyDeliveryUserInput) (*entity.DeliveryUser, error) {
	d, err := s.repos.DeliveryUsers.FindByID(ctx, in.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDeliveryUserNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Verified = in.Status
	if err := s.repos.DeliveryUsers.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *AdminService) GetDeliveryUsers(ctx context.Context) ([]entity.DeliveryUser, error) {
	return s.repos.DeliveryUsers.List(ctx)
}
