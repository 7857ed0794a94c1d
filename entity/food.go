package entity

import "time"

type Food struct {
	ID          string   `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	VendorID    string   `bson:"vendorId" gorm:"index;size:24" json:"vendorId"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	FoodType    string   `bson:"foodType" json:"foodType"`
	ReadyTime   int      `bson:"readyTime" json:"readyTime"`
	Price       float64  `bson:"price" json:"price"`
	Rating      float64  `bson:"rating" json:"rating"`
	Images      []string `bson:"images" gorm:"serializer:json" json:"images"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
