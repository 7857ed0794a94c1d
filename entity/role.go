package entity

const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
	RoleDelivery = "delivery"
)
