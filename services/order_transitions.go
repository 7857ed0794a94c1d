package services

import (
	"errors"

	"fooddelivery/entity"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// orderTransitions lists the statuses a vendor may move an order to.
var orderTransitions = map[string][]string{
	entity.OrderWaiting:      {entity.OrderAccepted, entity.OrderRejected},
	entity.OrderAccepted:     {entity.OrderUnderProcess, entity.OrderReady, entity.OrderRejected},
	entity.OrderUnderProcess: {entity.OrderReady},
}

func canTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
