package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fooddelivery/entity"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var (
	ErrCustomerExists   = errors.New("customer email already registered")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidOTP       = errors.New("invalid or expired otp")
)

type CustomerService struct {
	repos  *repository.Repositories
	creds  Credentials
	sender utils.OTPSender
	now    func() time.Time
}

func NewCustomerService(repos *repository.Repositories, creds Credentials, sender utils.OTPSender) *CustomerService {
	return &CustomerService{repos: repos, creds: creds, sender: sender, now: time.Now}
}

type CustomerSignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=6,max=12"`
	Password string `json:"password" binding:"required,min=6,max=12"`
}

type CustomerLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=12"`
}

type VerifyInput struct {
	OTP int `json:"otp" binding:"required"`
}

type EditProfileInput struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=3,max=128"`
}

func (s *CustomerService) signature(c *entity.Customer) (*SignatureResponse, error) {
	sig, err := s.creds.Sign(utils.Principal{ID: c.ID, Email: c.Email, Role: entity.RoleCustomer, Verified: c.Verified})
	if err != nil {
		return nil, err
	}
	return &SignatureResponse{Signature: sig, Email: c.Email, Verified: c.Verified}, nil
}

// Signup creates an unverified customer and sends the first OTP.
func (s *CustomerService) Signup(ctx context.Context, in CustomerSignupInput) (*SignatureResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repos.Customers.FindByEmail(ctx, email); err == nil {
		return nil, ErrCustomerExists
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
	otp, expiry := utils.GenerateOtp(s.now())

	c := &entity.Customer{
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Password:  hash,
		Salt:      salt,
		OTP:       otp,
		OTPExpiry: expiry,
		Cart:      []entity.CartItem{},
		Orders:    []string{},
	}
	if err := s.repos.Customers.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCustomerExists
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	if err := s.sender.SendOTP(ctx, otp, c.Phone); err != nil {
		log.Printf("send otp to customer %s: %v", c.ID, err)
	}
	return s.signature(c)
}

func (s *CustomerService) Login(ctx context.Context, in CustomerLoginInput) (*SignatureResponse, error) {
	c, err := s.repos.Customers.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.ValidatePassword(in.Password, c.Password, c.Salt) {
		return nil, ErrInvalidCredentials
	}
	return s.signature(c)
}

func (s *CustomerService) customer(ctx context.Context, p utils.Principal) (*entity.Customer, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	c, err := s.repos.Customers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

// Verify marks the customer verified when otp matches and has not expired,
// and returns a signature carrying the new state.
func (s *CustomerService) Verify(ctx context.Context, p utils.Principal, otp int) (*SignatureResponse, error) {
	c, err := s.customer(ctx, p)
	if err != nil {
		return nil, err
	}
	if c.OTP != otp || c.OTPExpiry.Before(s.now()) {
		return nil, ErrInvalidOTP
	}
	c.Verified = true
	if err := s.repos.Customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.signature(c)
}

// RequestOtp issues a fresh OTP and sends it to the registered phone.
func (s *CustomerService) RequestOtp(ctx context.Context, p utils.Principal) error {
	c, err := s.customer(ctx, p)
	if err != nil {
		return err
	}
	c.OTP, c.OTPExpiry = utils.GenerateOtp(s.now())
	if err := s.repos.Customers.Save(ctx, c); err != nil {
		return err
	}
	return s.sender.SendOTP(ctx, c.OTP, c.Phone)
}

func (s *CustomerService) Profile(ctx context.Context, p utils.Principal) (*entity.Customer, error) {
	return s.customer(ctx, p)
}

func (s *CustomerService) EditProfile(ctx context.Context, p utils.Principal, in EditProfileInput) (*entity.Customer, error) {
	c, err := s.customer(ctx, p)
	if err != nil {
		return nil, err
	}
	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	c.Address = strings.TrimSpace(in.Address)
	if err := s.repos.Customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
