package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type OrderService struct {
	repos    *repository.Repositories
	delivery *DeliveryService
	pub      events.Publisher
	now      func() time.Time
	orderID  func() string
}

func NewOrderService(repos *repository.Repositories, delivery *DeliveryService, pub events.Publisher) *OrderService {
	return &OrderService{
		repos:    repos,
		delivery: delivery,
		pub:      pub,
		now:      time.Now,
		orderID:  randomOrderID,
	}
}

// randomOrderID returns a number in [1000, 90998]. Collisions are not checked.
func randomOrderID() string {
	return strconv.Itoa(rand.Intn(89999) + 1000)
}

type OrderItemInput struct {
	FoodID string `json:"_id" binding:"required"`
	Unit   int    `json:"unit" binding:"required,min=1"`
}

type CreateOrderInput struct {
	TxnID  string           `json:"txnId" binding:"required"`
	Amount float64          `json:"amount" binding:"min=0"`
	Items  []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder turns the requested items into an order paid by the given
// transaction. Unknown food ids are dropped. The order, transaction and
// customer are written one after another without a transaction; a failure
// part way is logged with the order id.
func (s *OrderService) CreateOrder(ctx context.Context, p utils.Principal, in CreateOrderInput) (*entity.Order, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}

	txn, err := s.repos.Transactions.FindByID(ctx, in.TxnID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidTransaction
	}
	if err != nil {
		return nil, err
	}
	if strings.ToLower(txn.Status) == "failed" {
		return nil, ErrInvalidTransaction
	}

	customer, err := s.repos.Customers.FindByID(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.FoodID)
	}
	byID, err := foodIndex(ctx, s.repos.Foods, ids)
	if err != nil {
		return nil, err
	}

	var (
		items    = []entity.OrderItem{}
		total    float64
		vendorID string
		mixed    bool
	)
	for _, it := range in.Items {
		f, ok := byID[it.FoodID]
		if !ok {
			continue
		}
		if vendorID == "" {
			vendorID = f.VendorID
		} else if f.VendorID != vendorID {
			mixed = true
		}
		total += f.Price * float64(it.Unit)
		items = append(items, entity.OrderItem{FoodID: f.ID, Unit: it.Unit})
	}
	if mixed {
		log.Printf("customer %s: order spans several vendors, attributing to %s", p.ID, vendorID)
	}

	order := &entity.Order{
		OrderID:     s.orderID(),
		VendorID:    vendorID,
		CustomerID:  customer.ID,
		Items:       items,
		TotalAmount: total,
		PaidAmount:  in.Amount,
		OrderDate:   s.now().UTC(),
		OrderStatus: entity.OrderWaiting,
		ReadyTime:   entity.DefaultReadyTime,
	}
	if err := s.repos.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	txn.OrderID = order.OrderID
	txn.VendorID = vendorID
	txn.Status = entity.TxnConfirmed
	if err := s.repos.Transactions.Save(ctx, txn); err != nil {
		log.Printf("order %s: confirm transaction %s: %v", order.ID, txn.ID, err)
		return nil, fmt.Errorf("confirm transaction: %w", err)
	}

	customer.Cart = []entity.CartItem{}
	customer.Orders = append(customer.Orders, order.ID)
	if err := s.repos.Customers.Save(ctx, customer); err != nil {
		log.Printf("order %s: update customer %s: %v", order.ID, customer.ID, err)
		return nil, fmt.Errorf("update customer: %w", err)
	}

	if vendorID != "" && s.delivery != nil {
		assigned, err := s.delivery.AssignOrderForDelivery(ctx, order.ID, vendorID)
		switch {
		case err != nil:
			log.Printf("order %s: delivery assignment: %v", order.ID, err)
		case assigned != nil:
			order = assigned
		}
	}

	notify(ctx, s.pub, events.OrderCreated, order)
	return order, nil
}

// GetOrders returns the customer's orders, newest first.
func (s *OrderService) GetOrders(ctx context.Context, p utils.Principal) ([]entity.Order, error) {
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
	return s.repos.Orders.FindByIDs(ctx, c.Orders)
}

// GetOrderByID returns one of the customer's own orders with items expanded.
func (s *OrderService) GetOrderByID(ctx context.Context, p utils.Principal, id string) (*entity.OrderDetail, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	o, err := s.repos.Orders.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.CustomerID != p.ID {
		return nil, ErrOrderNotFound
	}
	details, err := expandOrders(ctx, s.repos.Foods, []entity.Order{*o})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}
