package services

import (
	"context"
	"errors"

	"fooddelivery/entity"
	"fooddelivery/repository"
)

var (
	ErrNoFoodAvailable = errors.New("no food available")
	ErrNoOffers        = errors.New("no offers available")
)

const (
	topRestaurantsLimit = 10
	quickReadyTime      = 30
)

// ShoppingService answers the public catalog queries. Vendor listings match
// the pincode and serviceAvailable=false.
type ShoppingService struct {
	repos *repository.Repositories
}

func NewShoppingService(repos *repository.Repositories) *ShoppingService {
	return &ShoppingService{repos: repos}
}

func (s *ShoppingService) vendors(ctx context.Context, pincode string, limit int) ([]entity.Vendor, error) {
	vendors, err := s.repos.Vendors.ListByPincode(ctx, pincode, false, limit)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, ErrNoFoodAvailable
	}
	return vendors, nil
}

// withFoods expands the food ids of every vendor, keeping each vendor's order.
func (s *ShoppingService) withFoods(ctx context.Context, vendors []entity.Vendor) ([]entity.VendorWithFoods, error) {
	var ids []string
	for _, v := range vendors {
		ids = append(ids, v.Foods...)
	}
	byID, err := foodIndex(ctx, s.repos.Foods, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entity.VendorWithFoods, 0, len(vendors))
	for _, v := range vendors {
		vf := entity.VendorWithFoods{Vendor: v, Foods: []entity.Food{}}
		for _, id := range v.Foods {
			if f, ok := byID[id]; ok {
				vf.Foods = append(vf.Foods, f)
			}
		}
		out = append(out, vf)
	}
	return out, nil
}

func (s *ShoppingService) FoodAvailability(ctx context.Context, pincode string) ([]entity.VendorWithFoods, error) {
	vendors, err := s.vendors(ctx, pincode, 0)
	if err != nil {
		return nil, err
	}
	return s.withFoods(ctx, vendors)
}

func (s *ShoppingService) TopRestaurants(ctx context.Context, pincode string) ([]entity.Vendor, error) {
	return s.vendors(ctx, pincode, topRestaurantsLimit)
}

func (s *ShoppingService) FoodsIn30Min(ctx context.Context, pincode string) ([]entity.Food, error) {
	all, err := s.SearchFoods(ctx, pincode)
	if err != nil {
		return nil, err
	}
	quick := []entity.Food{}
	for _, f := range all {
		if f.ReadyTime <= quickReadyTime {
			quick = append(quick, f)
		}
	}
	return quick, nil
}

func (s *ShoppingService) SearchFoods(ctx context.Context, pincode string) ([]entity.Food, error) {
	vendors, err := s.vendors(ctx, pincode, 0)
	if err != nil {
		return nil, err
	}
	expanded, err := s.withFoods(ctx, vendors)
	if err != nil {
		return nil, err
	}
	foods := []entity.Food{}
	for _, v := range expanded {
		foods = append(foods, v.Foods...)
	}
	return foods, nil
}

func (s *ShoppingService) RestaurantByID(ctx context.Context, id string) (*entity.VendorWithFoods, error) {
	v, err := s.repos.Vendors.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoFoodAvailable
	}
	if err != nil {
		return nil, err
	}
	expanded, err := s.withFoods(ctx, []entity.Vendor{*v})
	if err != nil {
		return nil, err
	}
	return &expanded[0], nil
}

func (s *ShoppingService) AvailableOffers(ctx context.Context, pincode string) ([]entity.Offer, error) {
	offers, err := s.repos.Offers.ListActiveByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, ErrNoOffers
	}
	return offers, nil
}
