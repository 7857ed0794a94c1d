package entity

import "time"

const (
	TxnOpen      = "OPEN"
	TxnConfirmed = "CONFIRMED"
	TxnFailed    = "FAILED"
)

const (
	PaymentModeCOD  = "COD"
	PaymentModeCard = "CARD"
)

type Transaction struct {
	ID              string  `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	Customer        string  `bson:"customer" gorm:"index;size:24" json:"customer"`
	VendorID        string  `bson:"vendorId" json:"vendorId"`
	OrderID         string  `bson:"orderId" json:"orderId"`
	OrderValue      float64 `bson:"orderValue" json:"orderValue"`
	OfferUsed       string  `bson:"offerUsed" json:"offerUsed"`
	Status          string  `bson:"status" json:"status"`
	PaymentMode     string  `bson:"paymentMode" json:"paymentMode"`
	PaymentResponse string  `bson:"paymentResponse" json:"paymentResponse"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
