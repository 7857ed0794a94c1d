package entity

import "time"

const (
	OfferTypeVendor  = "VENDOR"
	OfferTypeGeneric = "GENERIC"
)

const (
	PromoTypeUser = "USER"
	PromoTypeAll  = "ALL"
	PromoTypeBank = "BANK"
	PromoTypeCard = "CARD"
)

type Offer struct {
	ID            string     `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	OfferType     string     `bson:"offerType" json:"offerType"`
	Vendors       []string   `bson:"vendors" gorm:"serializer:json" json:"vendors"`
	Title         string     `bson:"title" json:"title"`
	Description   string     `bson:"description" json:"description"`
	MinValue      float64    `bson:"minValue" json:"minValue"`
	OfferAmount   float64    `bson:"offerAmount" json:"offerAmount"`
	StartValidity *time.Time `bson:"startValidity,omitempty" json:"startValidity,omitempty"`
	EndValidity   *time.Time `bson:"endValidity,omitempty" json:"endValidity,omitempty"`
	Promocode     string     `bson:"promocode" json:"promocode"`
	PromoType     string     `bson:"promoType" json:"promoType"`
	Bank          []string   `bson:"bank" gorm:"serializer:json" json:"bank"`
	Bins          []int      `bson:"bins" gorm:"serializer:json" json:"bins"`
	Pincode       string     `bson:"pincode" gorm:"index" json:"pincode"`
	IsActive      bool       `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
