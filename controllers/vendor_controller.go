package controllers

import (
	"errors"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"
	"fooddelivery/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	svc      *services.VendorService
	imageDir string
}

func NewVendorController(svc *services.VendorService, imageDir string) *VendorController {
	return &VendorController{svc: svc, imageDir: imageDir}
}

// vendorFail maps vendor service errors.
func vendorFail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVendorNotFound):
		resp.NotFound(c, "vendor info not found")
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "Order not found")
	case errors.Is(err, services.ErrOfferNotFound):
		resp.NotFound(c, "Offer not found")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		fail(c, err)
	}
}

// POST /vendor/login
func (vc *VendorController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	sig, err := vc.svc.Login(c.Request.Context(), in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.BadRequest(c, "Login credential is not valid")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"signature": sig})
}

// GET /vendor/profile
func (vc *VendorController) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	v, err := vc.svc.Profile(c.Request.Context(), p)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /vendor/profile
func (vc *VendorController) UpdateProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.EditVendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	v, err := vc.svc.UpdateProfile(c.Request.Context(), p, in)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /vendor/coverImage (multipart, field "images")
func (vc *VendorController) UpdateCoverImage(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	images, ok := vc.saveImages(c)
	if !ok {
		return
	}
	v, err := vc.svc.AddCoverImages(c.Request.Context(), p, images)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /vendor/service
func (vc *VendorController) UpdateService(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.UpdateServiceInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			resp.ValidationError(c, err)
			return
		}
	}
	v, err := vc.svc.ToggleService(c.Request.Context(), p, in)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /vendor/food (multipart fields plus up to ten "images")
func (vc *VendorController) AddFood(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.CreateFoodInput
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	images, ok := vc.saveImages(c)
	if !ok {
		return
	}
	v, err := vc.svc.AddFood(c.Request.Context(), p, in, images)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.Created(c, v)
}

func (vc *VendorController) saveImages(c *gin.Context) ([]string, bool) {
	images, err := utils.SaveUploadedImages(c, vc.imageDir)
	if errors.Is(err, utils.ErrTooManyImages) {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	return images, true
}

// GET /vendor/foods
func (vc *VendorController) GetFoods(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	foods, err := vc.svc.Foods(c.Request.Context(), p)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /vendor/orders
func (vc *VendorController) GetCurrentOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := vc.svc.CurrentOrders(c.Request.Context(), p)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /vendor/orders/:id
func (vc *VendorController) GetOrderDetails(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := vc.svc.OrderDetails(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /vendor/orders/:id/process
func (vc *VendorController) ProcessOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.ProcessOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	order, err := vc.svc.ProcessOrder(c.Request.Context(), p, c.Param("id"), in)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /vendor/offers
func (vc *VendorController) GetOffers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	offers, err := vc.svc.GetOffers(c.Request.Context(), p)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, offers)
}

// POST /vendor/offer
func (vc *VendorController) AddOffer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	offer, err := vc.svc.AddOffer(c.Request.Context(), p, in)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.Created(c, offer)
}

// PUT /vendor/offer/:id
func (vc *VendorController) EditOffer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	offer, err := vc.svc.EditOffer(c.Request.Context(), p, c.Param("id"), in)
	if err != nil {
		vendorFail(c, err)
		return
	}
	resp.OK(c, offer)
}
