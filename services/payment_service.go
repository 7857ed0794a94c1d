package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fooddelivery/entity"
	"fooddelivery/payment"
	"fooddelivery/repository"
	"fooddelivery/utils"
)

var (
	ErrOfferNotValid = errors.New("offer is not valid")
	ErrPaymentFailed = errors.New("payment failed")
)

const cashOnDeliveryResponse = "Payment is Cash on Delivery"

type PaymentService struct {
	repos   *repository.Repositories
	gateway payment.Gateway
}

// NewPaymentService builds the service. A nil gateway records every payment
// as cash on delivery.
func NewPaymentService(repos *repository.Repositories, gateway payment.Gateway) *PaymentService {
	return &PaymentService{repos: repos, gateway: gateway}
}

type CreatePaymentInput struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode string  `json:"paymentMode" binding:"required"`
	OfferID     string  `json:"offerId"`
}

// CreatePayment opens a transaction for the payable amount. An active offer
// is deducted; an unknown or inactive one is ignored.
func (s *PaymentService) CreatePayment(ctx context.Context, p utils.Principal, in CreatePaymentInput) (*entity.Transaction, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}

	payable := in.Amount
	offerUsed := "NA"
	if in.OfferID != "" {
		offerUsed = in.OfferID
		offer, err := s.repos.Offers.FindByID(ctx, in.OfferID)
		switch {
		case err == nil && offer.IsActive:
			payable -= offer.OfferAmount
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}

	txn := &entity.Transaction{
		Customer:        p.ID,
		OrderValue:      payable,
		OfferUsed:       offerUsed,
		Status:          entity.TxnOpen,
		PaymentMode:     in.PaymentMode,
		PaymentResponse: cashOnDeliveryResponse,
	}
	if err := s.repos.Transactions.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if s.gateway == nil || strings.EqualFold(in.PaymentMode, entity.PaymentModeCOD) {
		return txn, nil
	}

	intent, err := s.gateway.CreateIntent(ctx, payable, map[string]string{
		"transaction_id": txn.ID,
		"customer_id":    p.ID,
	})
	if err != nil {
		log.Printf("transaction %s: %v", txn.ID, err)
		txn.Status = entity.TxnFailed
		txn.PaymentResponse = err.Error()
		if serr := s.repos.Transactions.Save(ctx, txn); serr != nil {
			log.Printf("transaction %s: mark failed: %v", txn.ID, serr)
		}
		return txn, ErrPaymentFailed
	}
	txn.PaymentResponse = intent.ID
	if err := s.repos.Transactions.Save(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// VerifyOffer returns the offer when it can be applied. USER offers are
// limited to one use per customer, which is not tracked, so they are refused.
func (s *PaymentService) VerifyOffer(ctx context.Context, p utils.Principal, offerID string) (*entity.Offer, error) {
	if err := requireRole(p, entity.RoleCustomer); err != nil {
		return nil, err
	}
	offer, err := s.repos.Offers.FindByID(ctx, offerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOfferNotValid
	}
	if err != nil {
		return nil, err
	}
	if offer.PromoType == entity.PromoTypeUser || !offer.IsActive {
		return nil, ErrOfferNotValid
	}
	return offer, nil
}
