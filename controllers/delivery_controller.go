package controllers

import (
	"errors"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	svc *services.DeliveryService
}

func NewDeliveryController(svc *services.DeliveryService) *DeliveryController {
	return &DeliveryController{svc: svc}
}

func deliveryFail(c *gin.Context, err error, msg string) {
	if errors.Is(err, services.ErrDeliveryUserNotFound) {
		resp.BadRequest(c, msg)
		return
	}
	fail(c, err)
}

// POST /delivery/signup
func (dc *DeliveryController) Signup(c *gin.Context) {
	var in services.DeliverySignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	res, err := dc.svc.Signup(c.Request.Context(), in)
	if errors.Is(err, services.ErrDeliveryUserExists) {
		resp.BadRequest(c, "A delivery user with the emailId already exists")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, res)
}

// POST /delivery/login
func (dc *DeliveryController) Login(c *gin.Context) {
	var in services.CustomerLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	res, err := dc.svc.Login(c.Request.Context(), in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.BadRequest(c, "Error with login")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /delivery/profile
func (dc *DeliveryController) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	profile, err := dc.svc.Profile(c.Request.Context(), p)
	if err != nil {
		deliveryFail(c, err, "Error with getting deliveryUser profile")
		return
	}
	resp.OK(c, gin.H{"profile": profile})
}

// PATCH /delivery/profile
func (dc *DeliveryController) EditProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.EditProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	profile, err := dc.svc.EditProfile(c.Request.Context(), p, in)
	if err != nil {
		deliveryFail(c, err, "Error with editing profile")
		return
	}
	resp.OK(c, profile)
}

// PUT /delivery/changeStatus
func (dc *DeliveryController) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.DeliveryStatusInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			resp.ValidationError(c, err)
			return
		}
	}
	profile, err := dc.svc.ToggleStatus(c.Request.Context(), p, in)
	if err != nil {
		deliveryFail(c, err, "Error with updating delivery user status")
		return
	}
	resp.OK(c, profile)
}
