package services

import (
	"context"
	"errors"

	"fooddelivery/entity"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var ErrFoodNotFound = errors.New("food not found")

type CartService struct {
	repos *repository.Repositories
}

func NewCartService(repos *repository.Repositories) *CartService {
	return &CartService{repos: repos}
}

type AddToCartInput struct {
	FoodID string `json:"_id" binding:"required"`
	Unit   int    `json:"unit"`
}

// AddToCart sets the quantity of a food in the cart. A unit of zero or less
// removes an existing line and is ignored for a food not yet in the cart.
func (s *CartService) AddToCart(ctx context.Context, p utils.Principal, in AddToCartInput) ([]entity.CartLine, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	if _, err := s.repos.Foods.FindByID(ctx, in.FoodID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	c, err := s.repos.Customers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Cart = updateCart(c.Cart, in.FoodID, in.Unit)
	if err := s.repos.Customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.expandCart(ctx, c.Cart)
}

func updateCart(cart []entity.CartItem, foodID string, unit int) []entity.CartItem {
	for i, it := range cart {
		if it.FoodID != foodID {
			continue
		}
		if unit > 0 {
			cart[i].Unit = unit
			return cart
		}
		return append(cart[:i], cart[i+1:]...)
	}
	if unit <= 0 {
		return cart
	}
	return append(cart, entity.CartItem{FoodID: foodID, Unit: unit})
}

func (s *CartService) GetCart(ctx context.Context, p utils.Principal) ([]entity.CartLine, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	c, err := s.repos.Customers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.expandCart(ctx, c.Cart)
}

// DeleteCart empties the cart and returns the updated customer.
func (s *CartService) DeleteCart(ctx context.Context, p utils.Principal) (*entity.Customer, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	c, err := s.repos.Customers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Cart = []entity.CartItem{}
	if err := s.repos.Customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) expandCart(ctx context.Context, cart []entity.CartItem) ([]entity.CartLine, error) {
	ids := make([]string, 0, len(cart))
	for _, it := range cart {
		ids = append(ids, it.FoodID)
	}
	byID, err := foodIndex(ctx, s.repos.Foods, ids)
	if err != nil {
		return nil, err
	}
	lines := make([]entity.CartLine, 0, len(cart))
	for _, it := range cart {
		if f, ok := byID[it.FoodID]; ok {
			lines = append(lines, entity.CartLine{Food: f, Unit: it.Unit})
		}
	}
	return lines, nil
}
