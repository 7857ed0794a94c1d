package entity

import "time"

type DeliveryUser struct {
	ID          string  `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	Email       string  `bson:"email" gorm:"uniqueIndex;not null" json:"email"`
	Password    string  `bson:"password" json:"-"`
	Salt        string  `bson:"salt" json:"-"`
	FirstName   string  `bson:"firstName" json:"firstName"`
	LastName    string  `bson:"lastName" json:"lastName"`
	Address     string  `bson:"address" json:"address"`
	Phone       string  `bson:"phone" json:"phone"`
	Pincode     string  `bson:"pincode" gorm:"index" json:"pincode"`
	Lat         float64 `bson:"lat" json:"lat"`
	Lng         float64 `bson:"lng" json:"lng"`
	Verified    bool    `bson:"verified" json:"verified"`
	IsAvailable bool    `bson:"isAvailable" json:"isAvailable"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
