package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*OrderService, *recordingPublisher) {
	repos := newRepos(t)
	pub := &recordingPublisher{}
	svc := NewOrderService(repos, NewDeliveryService(repos, testCreds, pub), pub)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	svc.orderID = func() string { return "4242" }
	return svc, pub
}

func TestCreateOrderTotalsResolvableItems(t *testing.T) {
	ctx := context.Background()
	svc, pub := newOrderService(t)
	repos := svc.repos

	vendor := seedVendor(t, repos, entity.Vendor{Name: "Spice", Pincode: "560001"})
	dosa := seedFood(t, repos, vendor, "dosa", 50, 20)
	vada := seedFood(t, repos, vendor, "vada", 12.5, 10)
	customer, p := seedCustomer(t, repos)
	customer.Cart = []entity.CartItem{{FoodID: dosa.ID, Unit: 1}}
	require.NoError(t, repos.Customers.Save(ctx, customer))
	txn := seedTransaction(t, repos, customer.ID, entity.TxnOpen)

	order, err := svc.CreateOrder(ctx, p, CreateOrderInput{
		TxnID:  txn.ID,
		Amount: 125,
		Items: []OrderItemInput{
			{FoodID: dosa.ID, Unit: 2},
			{FoodID: entity.NewID(), Unit: 9},
			{FoodID: vada.ID, Unit: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 125.0, order.TotalAmount)
	assert.Equal(t, 125.0, order.PaidAmount)
	assert.Equal(t, []entity.OrderItem{{FoodID: dosa.ID, Unit: 2}, {FoodID: vada.ID, Unit: 2}}, order.Items)
	assert.Equal(t, "4242", order.OrderID)
	assert.Equal(t, vendor.ID, order.VendorID)
	assert.Equal(t, entity.OrderWaiting, order.OrderStatus)
	assert.Equal(t, entity.DefaultReadyTime, order.ReadyTime)
	assert.Empty(t, order.DeliveryID)

	storedTxn, err := repos.Transactions.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxnConfirmed, storedTxn.Status)
	assert.Equal(t, "4242", storedTxn.OrderID)
	assert.Equal(t, vendor.ID, storedTxn.VendorID)

	storedCustomer, err := repos.Customers.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, storedCustomer.Cart)
	assert.Equal(t, []string{order.ID}, storedCustomer.Orders)

	assert.Equal(t, []string{events.OrderCreated}, pub.names())
}

func TestCreateOrderRejectsFailedTransaction(t *testing.T) {
	for _, status := range []string{"FAILED", "failed", "Failed"} {
		t.Run(status, func(t *testing.T) {
			ctx := context.Background()
			svc, pub := newOrderService(t)
			repos := svc.repos

			vendor := seedVendor(t, repos, entity.Vendor{Name: "Spice", Pincode: "560001"})
			dosa := seedFood(t, repos, vendor, "dosa", 50, 20)
			customer, p := seedCustomer(t, repos)
			txn := seedTransaction(t, repos, customer.ID, status)

			_, err := svc.CreateOrder(ctx, p, CreateOrderInput{
				TxnID: txn.ID,
				Items: []OrderItemInput{{FoodID: dosa.ID, Unit: 1}},
			})
			require.ErrorIs(t, err, ErrInvalidTransaction)

			orders, err := repos.Orders.ListByVendor(ctx, vendor.ID)
			require.NoError(t, err)
			assert.Empty(t, orders)

			storedTxn, err := repos.Transactions.FindByID(ctx, txn.ID)
			require.NoError(t, err)
			assert.Equal(t, status, storedTxn.Status)
			assert.Empty(t, storedTxn.OrderID)

			storedCustomer, err := repos.Customers.FindByID(ctx, customer.ID)
			require.NoError(t, err)
			assert.Empty(t, storedCustomer.Orders)
			assert.Empty(t, pub.names())
		})
	}
}

func TestCreateOrderUnknownTransaction(t *testing.T) {
	svc, _ := newOrderService(t)
	_, p := seedCustomer(t, svc.repos)

	_, err := svc.CreateOrder(context.Background(), p, CreateOrderInput{
		TxnID: entity.NewID(),
		Items: []OrderItemInput{{FoodID: entity.NewID(), Unit: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidTransaction)
}

func TestCreateOrderAssignsDelivery(t *testing.T) {
	ctx := context.Background()
	svc, pub := newOrderService(t)
	repos := svc.repos

	vendor := seedVendor(t, repos, entity.Vendor{Name: "Spice", Pincode: "560001"})
	dosa := seedFood(t, repos, vendor, "dosa", 50, 20)
	busy := &entity.DeliveryUser{Email: "busy@del.test", Pincode: "560001", Verified: true}
	rider := &entity.DeliveryUser{Email: "rider@del.test", Pincode: "560001", Verified: true, IsAvailable: true}
	require.NoError(t, repos.DeliveryUsers.Create(ctx, busy))
	require.NoError(t, repos.DeliveryUsers.Create(ctx, rider))

	customer, p := seedCustomer(t, repos)
	txn := seedTransaction(t, repos, customer.ID, entity.TxnOpen)

	order, err := svc.CreateOrder(ctx, p, CreateOrderInput{
		TxnID: txn.ID,
		Items: []OrderItemInput{{FoodID: dosa.ID, Unit: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, rider.ID, order.DeliveryID)

	stored, err := repos.Orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, rider.ID, stored.DeliveryID)
	assert.Equal(t, []string{events.OrderAssigned, events.OrderCreated}, pub.names())
}

func TestCreateOrderAttributesFirstVendor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(t)
	repos := svc.repos

	first := seedVendor(t, repos, entity.Vendor{Name: "First", Pincode: "1"})
	second := seedVendor(t, repos, entity.Vendor{Name: "Second", Pincode: "1"})
	a := seedFood(t, repos, first, "a", 10, 5)
	b := seedFood(t, repos, second, "b", 20, 5)
	customer, p := seedCustomer(t, repos)
	txn := seedTransaction(t, repos, customer.ID, entity.TxnOpen)

	order, err := svc.CreateOrder(ctx, p, CreateOrderInput{
		TxnID: txn.ID,
		Items: []OrderItemInput{{FoodID: b.ID, Unit: 1}, {FoodID: a.ID, Unit: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID, order.VendorID)
	assert.Equal(t, 30.0, order.TotalAmount)
}

func TestGetOrders(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(t)
	repos := svc.repos

	vendor := seedVendor(t, repos, entity.Vendor{Name: "Spice", Pincode: "560001"})
	dosa := seedFood(t, repos, vendor, "dosa", 50, 20)
	customer, p := seedCustomer(t, repos)
	_, other := seedCustomer(t, repos)

	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var created []*entity.Order
	for i := 0; i < 2; i++ {
		at := day.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		txn := seedTransaction(t, repos, customer.ID, entity.TxnOpen)
		o, err := svc.CreateOrder(ctx, p, CreateOrderInput{TxnID: txn.ID, Items: []OrderItemInput{{FoodID: dosa.ID, Unit: i + 1}}})
		require.NoError(t, err)
		created = append(created, o)
	}

	orders, err := svc.GetOrders(ctx, p)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, created[1].ID, orders[0].ID)

	detail, err := svc.GetOrderByID(ctx, p, created[0].ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "dosa", detail.Items[0].Food.Name)

	_, err = svc.GetOrderByID(ctx, other, created[0].ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRandomOrderIDRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n, err := strconv.Atoi(randomOrderID())
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 90998)
	}
}
