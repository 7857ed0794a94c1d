package services

import (
	"context"
	"errors"
	"log"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Credentials signs principals for every role.
type Credentials struct {
	Secret string
	TTL    time.Duration
}

func (c Credentials) Sign(p utils.Principal) (string, error) {
	return utils.GenerateSignature(p, c.Secret, c.TTL)
}

// SignatureResponse is returned by customer and delivery signup, login and verify.
type SignatureResponse struct {
	Signature string `json:"signature"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
}

// requireRole rejects principals of another role before any lookup.
func requireRole(p utils.Principal, role string) error {
	if p.ID == "" || p.Role != role {
		return ErrForbidden
	}
	return nil
}

func foodIndex(ctx context.Context, foods repository.FoodRepository, ids []string) (map[string]entity.Food, error) {
	found, err := foods.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Food, len(found))
	for _, f := range found {
		byID[f.ID] = f
	}
	return byID, nil
}

// expandOrders resolves the food of every item. Items whose food no longer
// exists are left out.
func expandOrders(ctx context.Context, foods repository.FoodRepository, orders []entity.Order) ([]entity.OrderDetail, error) {
	var ids []string
	for _, o := range orders {
		for _, it := range o.Items {
			ids = append(ids, it.FoodID)
		}
	}
	byID, err := foodIndex(ctx, foods, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entity.OrderDetail, 0, len(orders))
	for _, o := range orders {
		d := entity.OrderDetail{Order: o, Items: []entity.OrderLine{}}
		for _, it := range o.Items {
			if f, ok := byID[it.FoodID]; ok {
				d.Items = append(d.Items, entity.OrderLine{Food: f, Unit: it.Unit})
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// notify publishes an order event. Delivery is best effort.
func notify(ctx context.Context, pub events.Publisher, name string, o *entity.Order) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, events.NewOrderEvent(name, o)); err != nil {
		log.Printf("publish %s for order %s: %v", name, o.ID, err)
	}
}
