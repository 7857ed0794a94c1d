package entity

import "time"

const (
	OrderWaiting      = "WAITING"
	OrderAccepted     = "ACCEPT"
	OrderRejected     = "REJECT"
	OrderUnderProcess = "UNDER-PROCESS"
	OrderReady        = "READY"
)

// DefaultReadyTime is the preparation estimate, in minutes, a new order starts with.
const DefaultReadyTime = 45

type OrderItem struct {
	FoodID string `bson:"food" json:"food"`
	Unit   int    `bson:"unit" json:"unit"`
}

type Order struct {
	ID          string      `bson:"_id" gorm:"primaryKey;size:24" json:"id"`
	OrderID     string      `bson:"orderId" gorm:"index" json:"orderId"`
	VendorID    string      `bson:"vendorId" gorm:"index;size:24" json:"vendorId"`
	CustomerID  string      `bson:"customerId" gorm:"index;size:24" json:"customerId"`
	Items       []OrderItem `bson:"items" gorm:"serializer:json" json:"items"`
	TotalAmount float64     `bson:"totalAmount" json:"totalAmount"`
	PaidAmount  float64     `bson:"paidAmount" json:"paidAmount"`
	OrderDate   time.Time   `bson:"orderDate" json:"orderDate"`
	OrderStatus string      `bson:"orderStatus" json:"orderStatus"`
	Remarks     string      `bson:"remarks" json:"remarks"`
	DeliveryID  string      `bson:"deliveryId" json:"deliveryId"`
	ReadyTime   int         `bson:"readyTime" json:"readyTime"`

	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

// OrderLine is an order item with its food document resolved.
type OrderLine struct {
	Food Food `json:"food"`
	Unit int  `json:"unit"`
}

// OrderDetail is an order with items expanded, returned by detail endpoints.
type OrderDetail struct {
	Order
	Items []OrderLine `json:"items"`
}
