package entity

import "time"

// CartItem is one cart line embedded in the customer document.
type CartItem struct {
	FoodID string `bson:"food" json:"food"`
	Unit   int    `bson:"unit" json:"unit"`
}

type Customer struct {
	ID        string     `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	Email     string     `bson:"email" gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `bson:"password" json:"-"`
	Salt      string     `bson:"salt" json:"-"`
	FirstName string     `bson:"firstName" json:"firstName"`
	LastName  string     `bson:"lastName" json:"lastName"`
	Address   string     `bson:"address" json:"address"`
	Phone     string     `bson:"phone" json:"phone"`
	Verified  bool       `bson:"verified" json:"verified"`
	OTP       int        `bson:"otp" json:"-"`
	OTPExpiry time.Time  `bson:"otpExpiry" json:"-"`
	Lat       float64    `bson:"lat" json:"lat"`
	Lng       float64    `bson:"lng" json:"lng"`
	Cart      []CartItem `bson:"cart" gorm:"serializer:json" json:"cart"`
	Orders    []string   `bson:"orders" gorm:"serializer:json" json:"orders"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

// CartLine is a cart line with its food document resolved.
type CartLine struct {
	Food Food `json:"food"`
	Unit int  `json:"unit"`
}
