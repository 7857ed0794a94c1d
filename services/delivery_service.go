package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var ErrDeliveryUserExists = errors.New("delivery user email already registered")

type DeliveryService struct {
	repos *repository.Repositories
	creds Credentials
	pub   events.Publisher
}

func NewDeliveryService(repos *repository.Repositories, creds Credentials, pub events.Publisher) *DeliveryService {
	return &DeliveryService{repos: repos, creds: creds, pub: pub}
}

type DeliverySignupInput struct {
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=6,max=12"`
	Password  string `json:"password" binding:"required,min=6,max=12"`
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=6,max=128"`
	Pincode   string `json:"pincode" binding:"required,min=4,max=16"`
}

type DeliveryStatusInput struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (s *DeliveryService) signature(d *entity.DeliveryUser) (*SignatureResponse, error) {
	sig, err := s.creds.Sign(utils.Principal{ID: d.ID, Email: d.Email, Role: entity.RoleDelivery, Verified: d.Verified})
	if err != nil {
		return nil, err
	}
	return &SignatureResponse{Signature: sig, Email: d.Email, Verified: d.Verified}, nil
}

// Signup registers an unverified, unavailable delivery user.
func (s *DeliveryService) Signup(ctx context.Context, in DeliverySignupInput) (*SignatureResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repos.DeliveryUsers.FindByEmail(ctx, email); err == nil {
		return nil, ErrDeliveryUserExists
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

	d := &entity.DeliveryUser{
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Password:  hash,
		Salt:      salt,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		Pincode:   strings.TrimSpace(in.Pincode),
	}
	if err := s.repos.DeliveryUsers.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDeliveryUserExists
		}
		return nil, fmt.Errorf("create delivery user: %w", err)
	}
	return s.signature(d)
}

func (s *DeliveryService) Login(ctx context.Context, in CustomerLoginInput) (*SignatureResponse, error) {
	d, err := s.repos.DeliveryUsers.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.ValidatePassword(in.Password, d.Password, d.Salt) {
		return nil, ErrInvalidCredentials
	}
	return s.signature(d)
}

func (s *DeliveryService) deliveryUser(ctx context.Context, p utils.Principal) (*entity.DeliveryUser, error) {
	if err := requireRole(p, entity.RoleDelivery); err != nil {
		return nil, err
	}
	d, err := s.repos.DeliveryUsers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDeliveryUserNotFound
	}
	return d, err
}

func (s *DeliveryService) Profile(ctx context.Context, p utils.Principal) (*entity.DeliveryUser, error) {
	return s.deliveryUser(ctx, p)
}

func (s *DeliveryService) EditProfile(ctx context.Context, p utils.Principal, in EditProfileInput) (*entity.DeliveryUser, error) {
	d, err := s.deliveryUser(ctx, p)
	if err != nil {
		return nil, err
	}
	d.FirstName = strings.TrimSpace(in.FirstName)
	d.LastName = strings.TrimSpace(in.LastName)
	d.Address = strings.TrimSpace(in.Address)
	if err := s.repos.DeliveryUsers.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ToggleStatus flips isAvailable and records the location when both
// coordinates are given.
func (s *DeliveryService) ToggleStatus(ctx context.Context, p utils.Principal, in DeliveryStatusInput) (*entity.DeliveryUser, error) {
	d, err := s.deliveryUser(ctx, p)
	if err != nil {
		return nil, err
	}
	if in.Lat != nil && in.Lng != nil {
		d.Lat, d.Lng = *in.Lat, *in.Lng
	}
	d.IsAvailable = !d.IsAvailable
	if err := s.repos.DeliveryUsers.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// AssignOrderForDelivery attaches the first verified, available delivery
// user in the vendor's pincode to the order. It returns the updated order,
// or nil when nobody is available.
func (s *DeliveryService) AssignOrderForDelivery(ctx context.Context, orderID, vendorID string) (*entity.Order, error) {
	v, err := s.repos.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("find vendor %s: %w", vendorID, err)
	}
	candidates, err := s.repos.DeliveryUsers.FindAvailable(ctx, v.Pincode)
	if err != nil {
		return nil, fmt.Errorf("find delivery users in %s: %w", v.Pincode, err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	o, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}
	o.DeliveryID = candidates[0].ID
	if err := s.repos.Orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("assign order %s: %w", orderID, err)
	}
	notify(ctx, s.pub, events.OrderAssigned, o)
	return o, nil
}
