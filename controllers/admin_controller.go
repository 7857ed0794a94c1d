package controllers

import (
	"errors"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{svc: svc}
}

// POST /admin/login
func (ac *AdminController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	sig, err := ac.svc.Login(in.Email, in.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrAdminLoginUnavailable):
		resp.Forbidden(c, "admin login is disabled")
	case err != nil:
		fail(c, err)
	default:
		resp.OK(c, gin.H{"signature": sig})
	}
}

// POST /admin/vendor
func (ac *AdminController) CreateVendor(c *gin.Context) {
	var in services.CreateVendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	v, err := ac.svc.CreateVendor(c.Request.Context(), in)
	if errors.Is(err, services.ErrVendorExists) {
		resp.BadRequest(c, "Vendor already exists")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, v)
}

// GET /admin/vendors
func (ac *AdminController) GetVendors(c *gin.Context) {
	vendors, err := ac.svc.GetVendors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, vendors)
}

// GET /admin/vendors/:id
func (ac *AdminController) GetVendorByID(c *gin.Context) {
	v, err := ac.svc.GetVendorByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrVendorNotFound) {
		resp.NotFound(c, "No vendor found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// GET /admin/transactions
func (ac *AdminController) GetTransactions(c *gin.Context) {
	txns, err := ac.svc.GetTransactions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, txns)
}

// GET /admin/transactions/:id
func (ac *AdminController) GetTransactionByID(c *gin.Context) {
	txn, err := ac.svc.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrTransactionNotFound) {
		resp.NotFound(c, "transaction not available")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, txn)
}

// PUT /admin/delivery/verify
func (ac *AdminController) VerifyDeliveryUser(c *gin.Context) {
	var in services.VerifyDeliveryUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	d, err := ac.svc.VerifyDeliveryUser(c.Request.Context(), in)
	if errors.Is(err, services.ErrDeliveryUserNotFound) {
		resp.BadRequest(c, "User not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /admin/delivery/users
func (ac *AdminController) GetDeliveryUsers(c *gin.Context) {
	users, err := ac.svc.GetDeliveryUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}
