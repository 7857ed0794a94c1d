package services

import (
	"context"
	"fmt"
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopRestaurants(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	svc := NewShoppingService(repos)

	for i := 0; i < 12; i++ {
		seedVendor(t, repos, entity.Vendor{Name: fmt.Sprintf("v%02d", i), Pincode: "100001", Rating: float64(i % 6)})
	}
	seedVendor(t, repos, entity.Vendor{Name: "available", Pincode: "100001", Rating: 10, ServiceAvailable: true})
	seedVendor(t, repos, entity.Vendor{Name: "elsewhere", Pincode: "200002", Rating: 10})

	got, err := svc.TopRestaurants(ctx, "100001")
	require.NoError(t, err)
	require.Len(t, got, 10)
	for i, v := range got {
		assert.False(t, v.ServiceAvailable)
		assert.Equal(t, "100001", v.Pincode)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Rating, v.Rating)
		}
	}
	assert.Equal(t, 5.0, got[0].Rating)

	_, err = svc.TopRestaurants(ctx, "999999")
	assert.ErrorIs(t, err, ErrNoFoodAvailable)
}

func TestShoppingFoods(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	svc := NewShoppingService(repos)

	best := seedVendor(t, repos, entity.Vendor{Name: "best", Pincode: "100001", Rating: 5})
	ok := seedVendor(t, repos, entity.Vendor{Name: "ok", Pincode: "100001", Rating: 3})
	seedFood(t, repos, best, "biryani", 200, 45)
	seedFood(t, repos, best, "lassi", 40, 5)
	seedFood(t, repos, ok, "thali", 150, 30)

	avail, err := svc.FoodAvailability(ctx, "100001")
	require.NoError(t, err)
	require.Len(t, avail, 2)
	assert.Equal(t, "best", avail[0].Name)
	assert.Len(t, avail[0].Foods, 2)

	all, err := svc.SearchFoods(ctx, "100001")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	quick, err := svc.FoodsIn30Min(ctx, "100001")
	require.NoError(t, err)
	names := []string{}
	for _, f := range quick {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"lassi", "thali"}, names)

	r, err := svc.RestaurantByID(ctx, ok.ID)
	require.NoError(t, err)
	require.Len(t, r.Foods, 1)
	assert.Equal(t, "thali", r.Foods[0].Name)

	_, err = svc.RestaurantByID(ctx, entity.NewID())
	assert.ErrorIs(t, err, ErrNoFoodAvailable)
}

func TestAvailableOffers(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	svc := NewShoppingService(repos)

	require.NoError(t, repos.Offers.Create(ctx, &entity.Offer{Title: "live", Pincode: "100001", IsActive: true, OfferType: entity.OfferTypeGeneric}))
	require.NoError(t, repos.Offers.Create(ctx, &entity.Offer{Title: "paused", Pincode: "100001", OfferType: entity.OfferTypeGeneric}))

	offers, err := svc.AvailableOffers(ctx, "100001")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "live", offers[0].Title)

	_, err = svc.AvailableOffers(ctx, "200002")
	assert.ErrorIs(t, err, ErrNoOffers)
}
