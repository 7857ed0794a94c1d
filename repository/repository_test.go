package repository_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/repository"
	"fooddelivery/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRepositories(t *testing.T) {
	exerciseRepositories(t, testutil.NewSQLiteRepos(t))
}

func TestMongoRepositories(t *testing.T) {
	db := testutil.StartMongo(t)
	require.NoError(t, repository.EnsureMongoIndexes(context.Background(), db))
	exerciseRepositories(t, repository.NewMongoRepositories(db))
}

func exerciseRepositories(t *testing.T, repos *repository.Repositories) {
	t.Run("vendor email is unique", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, repos.Vendors.Create(ctx, &entity.Vendor{Name: "a", Email: "dup@shop.test", Pincode: "1"}))
		err := repos.Vendors.Create(ctx, &entity.Vendor{Name: "b", Email: "dup@shop.test", Pincode: "1"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)

		_, err = repos.Vendors.FindByEmail(ctx, "nobody@shop.test")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("vendors by pincode sorted by rating", func(t *testing.T) {
		ctx := context.Background()
		for i, rating := range []float64{2, 5, 3} {
			v := &entity.Vendor{
				Name:    "r" + string(rune('a'+i)),
				Email:   "r" + string(rune('a'+i)) + "@pin.test",
				Pincode: "560001",
				Rating:  rating,
			}
			require.NoError(t, repos.Vendors.Create(ctx, v))
		}
		require.NoError(t, repos.Vendors.Create(ctx, &entity.Vendor{
			Name: "open", Email: "open@pin.test", Pincode: "560001", Rating: 9, ServiceAvailable: true,
		}))

		got, err := repos.Vendors.ListByPincode(ctx, "560001", false, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 5.0, got[0].Rating)
		assert.Equal(t, 3.0, got[1].Rating)
	})

	t.Run("vendor save replaces the document", func(t *testing.T) {
		ctx := context.Background()
		v := &entity.Vendor{Name: "before", Email: "save@shop.test", FoodType: []string{"veg"}}
		require.NoError(t, repos.Vendors.Create(ctx, v))

		v.Name = "after"
		v.Foods = append(v.Foods, "food-1")
		require.NoError(t, repos.Vendors.Save(ctx, v))

		got, err := repos.Vendors.FindByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Name)
		assert.Equal(t, []string{"food-1"}, got.Foods)
		assert.Equal(t, []string{"veg"}, got.FoodType)
	})

	t.Run("foods by ids skips unknown ids", func(t *testing.T) {
		ctx := context.Background()
		f := &entity.Food{VendorID: "v1", Name: "dosa", Price: 40, ReadyTime: 20}
		require.NoError(t, repos.Foods.Create(ctx, f))

		got, err := repos.Foods.FindByIDs(ctx, []string{f.ID, entity.NewID()})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "dosa", got[0].Name)

		empty, err := repos.Foods.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("customer cart round trips", func(t *testing.T) {
		ctx := context.Background()
		c := &entity.Customer{Email: "cart@cust.test", Phone: "99"}
		require.NoError(t, repos.Customers.Create(ctx, c))

		c.Cart = []entity.CartItem{{FoodID: "f1", Unit: 2}}
		c.Orders = []string{"o1"}
		require.NoError(t, repos.Customers.Save(ctx, c))

		got, err := repos.Customers.FindByEmail(ctx, "cart@cust.test")
		require.NoError(t, err)
		assert.Equal(t, []entity.CartItem{{FoodID: "f1", Unit: 2}}, got.Cart)
		assert.Equal(t, []string{"o1"}, got.Orders)
	})

	t.Run("orders newest first", func(t *testing.T) {
		ctx := context.Background()
		base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		older := &entity.Order{OrderID: "1001", VendorID: "vx", OrderDate: base}
		newer := &entity.Order{OrderID: "1002", VendorID: "vx", OrderDate: base.Add(time.Hour)}
		require.NoError(t, repos.Orders.Create(ctx, older))
		require.NoError(t, repos.Orders.Create(ctx, newer))

		got, err := repos.Orders.FindByIDs(ctx, []string{older.ID, newer.ID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1002", got[0].OrderID)

		byVendor, err := repos.Orders.ListByVendor(ctx, "vx")
		require.NoError(t, err)
		assert.Len(t, byVendor, 2)
	})

	t.Run("available delivery users", func(t *testing.T) {
		ctx := context.Background()
		users := []*entity.DeliveryUser{
			{Email: "d1@del.test", Pincode: "400001", Verified: true, IsAvailable: false},
			{Email: "d2@del.test", Pincode: "400001", Verified: false, IsAvailable: true},
			{Email: "d3@del.test", Pincode: "400001", Verified: true, IsAvailable: true},
			{Email: "d4@del.test", Pincode: "400002", Verified: true, IsAvailable: true},
		}
		for _, u := range users {
			require.NoError(t, repos.DeliveryUsers.Create(ctx, u))
		}

		got, err := repos.DeliveryUsers.FindAvailable(ctx, "400001")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "d3@del.test", got[0].Email)
	})

	t.Run("offers for vendor include generic", func(t *testing.T) {
		ctx := context.Background()
		mine := &entity.Offer{OfferType: entity.OfferTypeVendor, Vendors: []string{"vendor-a"}, Title: "mine", Pincode: "700001", IsActive: true}
		other := &entity.Offer{OfferType: entity.OfferTypeVendor, Vendors: []string{"vendor-b"}, Title: "other", Pincode: "700001"}
		generic := &entity.Offer{OfferType: entity.OfferTypeGeneric, Title: "generic", Pincode: "700002", IsActive: true}
		for _, o := range []*entity.Offer{mine, other, generic} {
			require.NoError(t, repos.Offers.Create(ctx, o))
		}

		got, err := repos.Offers.ListForVendor(ctx, "vendor-a")
		require.NoError(t, err)
		titles := make([]string, 0, len(got))
		for _, o := range got {
			titles = append(titles, o.Title)
		}
		assert.ElementsMatch(t, []string{"mine", "generic"}, titles)

		active, err := repos.Offers.ListActiveByPincode(ctx, "700001")
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "mine", active[0].Title)
	})

	t.Run("transactions", func(t *testing.T) {
		ctx := context.Background()
		txn := &entity.Transaction{Customer: "c1", OrderValue: 120, Status: entity.TxnOpen, OfferUsed: "NA"}
		require.NoError(t, repos.Transactions.Create(ctx, txn))

		txn.Status = entity.TxnConfirmed
		require.NoError(t, repos.Transactions.Save(ctx, txn))

		got, err := repos.Transactions.FindByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TxnConfirmed, got.Status)

		all, err := repos.Transactions.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, all)
	})
}
