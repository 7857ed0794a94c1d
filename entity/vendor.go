package entity

import "time"

type Vendor struct {
	ID               string   `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	Name             string   `bson:"name" json:"name"`
	OwnerName        string   `bson:"ownerName" json:"ownerName"`
	FoodType         []string `bson:"foodType" gorm:"serializer:json" json:"foodType"`
	Pincode          string   `bson:"pincode" gorm:"index" json:"pincode"`
	Address          string   `bson:"address" json:"address"`
	Phone            string   `bson:"phone" json:"phone"`
	Email            string   `bson:"email" gorm:"uniqueIndex;not null" json:"email"`
	Password         string   `bson:"password" json:"-"`
	Salt             string   `bson:"salt" json:"-"`
	ServiceAvailable bool     `bson:"serviceAvailable" json:"serviceAvailable"`
	CoverImages      []string `bson:"coverImages" gorm:"serializer:json" json:"coverImages"`
	Rating           float64  `bson:"rating" json:"rating"`
	Foods            []string `bson:"foods" gorm:"serializer:json" json:"foods"`
	Lat              float64  `bson:"lat" json:"lat"`
	Lng              float64  `bson:"lng" json:"lng"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

// VendorWithFoods is a vendor with its food ids expanded, the shape the
// shopping endpoints return.
type VendorWithFoods struct {
	Vendor
	Foods []Food `json:"foods"`
}
