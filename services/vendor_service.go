package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOfferNotFound = errors.New("offer not found")
)

type VendorService struct {
	repos *repository.Repositories
	creds Credentials
	pub   events.Publisher
}

func NewVendorService(repos *repository.Repositories, creds Credentials, pub events.Publisher) *VendorService {
	return &VendorService{repos: repos, creds: creds, pub: pub}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EditVendorInput struct {
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	FoodType []string `json:"foodType"`
}

type UpdateServiceInput struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type CreateFoodInput struct {
	Name        string  `form:"name" json:"name" binding:"required"`
	Description string  `form:"description" json:"description"`
	Category    string  `form:"category" json:"category"`
	FoodType    string  `form:"foodType" json:"foodType"`
	ReadyTime   int     `form:"readyTime" json:"readyTime" binding:"min=0"`
	Price       float64 `form:"price" json:"price" binding:"min=0"`
}

type ProcessOrderInput struct {
	Status  string `json:"status" binding:"required,oneof=ACCEPT REJECT UNDER-PROCESS READY"`
	Remarks string `json:"remarks"`
	Time    int    `json:"time" binding:"min=0"`
}

type OfferInput struct {
	OfferType     string     `json:"offerType" binding:"required,oneof=VENDOR GENERIC"`
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	MinValue      float64    `json:"minValue" binding:"min=0"`
	OfferAmount   float64    `json:"offerAmount" binding:"min=0"`
	StartValidity *time.Time `json:"startValidity"`
	EndValidity   *time.Time `json:"endValidity"`
	Promocode     string     `json:"promocode"`
	PromoType     string     `json:"promoType" binding:"required,oneof=USER ALL BANK CARD"`
	Bank          []string   `json:"bank"`
	Bins          []int      `json:"bins"`
	Pincode       string     `json:"pincode" binding:"required"`
	IsActive      bool       `json:"isActive"`
}

func (s *VendorService) Login(ctx context.Context, in LoginInput) (string, error) {
	v, err := s.repos.Vendors.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !utils.ValidatePassword(in.Password, v.Password, v.Salt) {
		return "", ErrInvalidCredentials
	}
	return s.creds.Sign(utils.Principal{ID: v.ID, Email: v.Email, Role: entity.RoleVendor, Verified: true, Name: v.Name})
}

func (s *VendorService) vendor(ctx context.Context, p utils.Principal) (*entity.Vendor, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	v, err := s.repos.Vendors.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVendorNotFound
	}
	return v, err
}

func (s *VendorService) Profile(ctx context.Context, p utils.Principal) (*entity.Vendor, error) {
	return s.vendor(ctx, p)
}

func (s *VendorService) UpdateProfile(ctx context.Context, p utils.Principal, in EditVendorInput) (*entity.Vendor, error) {
	v, err := s.vendor(ctx, p)
	if err != nil {
		return nil, err
	}
	v.Name = strings.TrimSpace(in.Name)
	v.Address = strings.TrimSpace(in.Address)
	v.Phone = strings.TrimSpace(in.Phone)
	if in.FoodType != nil {
		v.FoodType = in.FoodType
	}
	if err := s.repos.Vendors.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddCoverImages appends already stored image names to the vendor's covers.
func (s *VendorService) AddCoverImages(ctx context.Context, p utils.Principal, images []string) (*entity.Vendor, error) {
	v, err := s.vendor(ctx, p)
	if err != nil {
		return nil, err
	}
	v.CoverImages = append(v.CoverImages, images...)
	if err := s.repos.Vendors.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ToggleService flips serviceAvailable and records the location when both
// coordinates are given.
func (s *VendorService) ToggleService(ctx context.Context, p utils.Principal, in UpdateServiceInput) (*entity.Vendor, error) {
	v, err := s.vendor(ctx, p)
	if err != nil {
		return nil, err
	}
	v.ServiceAvailable = !v.ServiceAvailable
	if in.Lat != nil && in.Lng != nil {
		v.Lat, v.Lng = *in.Lat, *in.Lng
	}
	if err := s.repos.Vendors.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddFood creates a catalog entry owned by the vendor and returns the
// vendor with the new food id appended.
func (s *VendorService) AddFood(ctx context.Context, p utils.Principal, in CreateFoodInput, images []string) (*entity.Vendor, error) {
	v, err := s.vendor(ctx, p)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	f := &entity.Food{
		VendorID:    v.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
		FoodType:    in.FoodType,
		ReadyTime:   in.ReadyTime,
		Price:       in.Price,
		Images:      images,
	}
	if err := s.repos.Foods.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}

	v.Foods = append(v.Foods, f.ID)
	if err := s.repos.Vendors.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("link food %s: %w", f.ID, err)
	}
	return v, nil
}

func (s *VendorService) Foods(ctx context.Context, p utils.Principal) ([]entity.Food, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	return s.repos.Foods.ListByVendor(ctx, p.ID)
}

func (s *VendorService) CurrentOrders(ctx context.Context, p utils.Principal) ([]entity.OrderDetail, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	orders, err := s.repos.Orders.ListByVendor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return expandOrders(ctx, s.repos.Foods, orders)
}

func (s *VendorService) ownOrder(ctx context.Context, p utils.Principal, id string) (*entity.Order, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	o, err := s.repos.Orders.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.VendorID != p.ID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *VendorService) OrderDetails(ctx context.Context, p utils.Principal, id string) (*entity.OrderDetail, error) {
	o, err := s.ownOrder(ctx, p, id)
	if err != nil {
		return nil, err
	}
	details, err := expandOrders(ctx, s.repos.Foods, []entity.Order{*o})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ProcessOrder moves an order along the vendor workflow. A positive time
// replaces the ready time estimate.
func (s *VendorService) ProcessOrder(ctx context.Context, p utils.Principal, id string, in ProcessOrderInput) (*entity.Order, error) {
	o, err := s.ownOrder(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(o.OrderStatus, in.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.OrderStatus, in.Status)
	}

	o.OrderStatus = in.Status
	o.Remarks = in.Remarks
	if in.Time > 0 {
		o.ReadyTime = in.Time
	}
	if err := s.repos.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	notify(ctx, s.pub, events.OrderStatusChanged, o)
	return o, nil
}

func (s *VendorService) GetOffers(ctx context.Context, p utils.Principal) ([]entity.Offer, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	return s.repos.Offers.ListForVendor(ctx, p.ID)
}

func (s *VendorService) AddOffer(ctx context.Context, p utils.Principal, in OfferInput) (*entity.Offer, error) {
	v, err := s.vendor(ctx, p)
	if err != nil {
		return nil, err
	}
	o := &entity.Offer{Vendors: []string{v.ID}}
	applyOffer(o, in)
	if err := s.repos.Offers.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}
	return o, nil
}

// EditOffer replaces the editable fields of an offer the vendor is part of.
func (s *VendorService) EditOffer(ctx context.Context, p utils.Principal, id string, in OfferInput) (*entity.Offer, error) {
	if err := requireRole(p, entity.RoleVendor); err != nil {
		return nil, err
	}
	o, err := s.repos.Offers.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	if !slices.Contains(o.Vendors, p.ID) {
		return nil, ErrOfferNotFound
	}
	applyOffer(o, in)
	if err := s.repos.Offers.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func applyOffer(o *entity.Offer, in OfferInput) {
	o.OfferType = in.OfferType
	o.Title = in.Title
	o.Description = in.Description
	o.MinValue = in.MinValue
	o.OfferAmount = in.OfferAmount
	o.StartValidity = in.StartValidity
	o.EndValidity = in.EndValidity
	o.Promocode = in.Promocode
	o.PromoType = in.PromoType
	o.Bank = in.Bank
	o.Bins = in.Bins
	o.Pincode = in.Pincode
	o.IsActive = in.IsActive
	if o.Bank == nil {
		o.Bank = []string{}
	}
	if o.Bins == nil {
		o.Bins = []int{}
	}
}
