package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/repository"
	"fooddelivery/testutil"
	"fooddelivery/utils"

	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{Secret: "test-secret", TTL: time.Hour}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingPublisher) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Name)
	}
	return out
}

type recordingSender struct {
	otps []int
}

func (s *recordingSender) SendOTP(_ context.Context, otp int, _ string) error {
	s.otps = append(s.otps, otp)
	return nil
}

func newRepos(t *testing.T) *repository.Repositories {
	return testutil.NewSQLiteRepos(t)
}

func seedVendor(t *testing.T, repos *repository.Repositories, v entity.Vendor) *entity.Vendor {
	t.Helper()
	if v.Email == "" {
		v.Email = entity.NewID() + "@vendor.test"
	}
	if v.Foods == nil {
		v.Foods = []string{}
	}
	require.NoError(t, repos.Vendors.Create(context.Background(), &v))
	return &v
}

func seedFood(t *testing.T, repos *repository.Repositories, vendor *entity.Vendor, name string, price float64, readyTime int) *entity.Food {
	t.Helper()
	ctx := context.Background()
	f := &entity.Food{VendorID: vendor.ID, Name: name, Price: price, ReadyTime: readyTime, Images: []string{}}
	require.NoError(t, repos.Foods.Create(ctx, f))
	vendor.Foods = append(vendor.Foods, f.ID)
	require.NoError(t, repos.Vendors.Save(ctx, vendor))
	return f
}

func seedCustomer(t *testing.T, repos *repository.Repositories) (*entity.Customer, utils.Principal) {
	t.Helper()
	c := &entity.Customer{Email: entity.NewID() + "@customer.test", Phone: "9876543210", Cart: []entity.CartItem{}, Orders: []string{}}
	require.NoError(t, repos.Customers.Create(context.Background(), c))
	return c, utils.Principal{ID: c.ID, Email: c.Email, Role: entity.RoleCustomer}
}

func seedTransaction(t *testing.T, repos *repository.Repositories, customerID, status string) *entity.Transaction {
	t.Helper()
	txn := &entity.Transaction{Customer: customerID, OrderValue: 100, OfferUsed: "NA", Status: status, PaymentMode: entity.PaymentModeCOD}
	require.NoError(t, repos.Transactions.Create(context.Background(), txn))
	return txn
}
