package controllers

import (
	"errors"
	"net/http"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customers *services.CustomerService
	cart      *services.CartService
	orders    *services.OrderService
	payments  *services.PaymentService
}

func NewCustomerController(
	customers *services.CustomerService,
	cart *services.CartService,
	orders *services.OrderService,
	payments *services.PaymentService,
) *CustomerController {
	return &CustomerController{customers: customers, cart: cart, orders: orders, payments: payments}
}

func customerFail(c *gin.Context, err error, msg string) {
	if errors.Is(err, services.ErrCustomerNotFound) {
		resp.BadRequest(c, msg)
		return
	}
	fail(c, err)
}

// POST /customer/signup
func (cc *CustomerController) Signup(c *gin.Context) {
	var in services.CustomerSignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	res, err := cc.customers.Signup(c.Request.Context(), in)
	if errors.Is(err, services.ErrCustomerExists) {
		resp.BadRequest(c, "An user with the emailId already exists")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, res)
}

// POST /customer/login
func (cc *CustomerController) Login(c *gin.Context) {
	var in services.CustomerLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	res, err := cc.customers.Login(c.Request.Context(), in)
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

// PATCH /customer/verify
func (cc *CustomerController) Verify(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.VerifyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	res, err := cc.customers.Verify(c.Request.Context(), p, in.OTP)
	if errors.Is(err, services.ErrInvalidOTP) {
		resp.BadRequest(c, "Error with otp validation")
		return
	}
	if err != nil {
		customerFail(c, err, "Error with otp validation")
		return
	}
	resp.OK(c, res)
}

// GET /customer/otp
func (cc *CustomerController) RequestOtp(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := cc.customers.RequestOtp(c.Request.Context(), p); err != nil {
		customerFail(c, err, "Error with otp request")
		return
	}
	resp.Message(c, http.StatusOK, "otp sent to registered phone number")
}

// GET /customer/profile
func (cc *CustomerController) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	profile, err := cc.customers.Profile(c.Request.Context(), p)
	if err != nil {
		customerFail(c, err, "Error with getting customer profile")
		return
	}
	resp.OK(c, gin.H{"profile": profile})
}

// PATCH /customer/profile
func (cc *CustomerController) EditProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.EditProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	profile, err := cc.customers.EditProfile(c.Request.Context(), p, in)
	if err != nil {
		customerFail(c, err, "Error with editing profile")
		return
	}
	resp.OK(c, profile)
}

// POST /customer/cart
func (cc *CustomerController) AddToCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.AddToCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	cart, err := cc.cart.AddToCart(c.Request.Context(), p, in)
	if errors.Is(err, services.ErrFoodNotFound) {
		resp.BadRequest(c, "Error with adding to cart")
		return
	}
	if err != nil {
		customerFail(c, err, "Error with adding to cart")
		return
	}
	resp.OK(c, cart)
}

// GET /customer/cart
func (cc *CustomerController) GetCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	cart, err := cc.cart.GetCart(c.Request.Context(), p)
	if err != nil {
		customerFail(c, err, "cart is empty")
		return
	}
	resp.OK(c, cart)
}

// DELETE /customer/cart
func (cc *CustomerController) DeleteCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	customer, err := cc.cart.DeleteCart(c.Request.Context(), p)
	if err != nil {
		customerFail(c, err, "cart is already empty")
		return
	}
	resp.OK(c, customer)
}

// POST /customer/create-payment
func (cc *CustomerController) CreatePayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	txn, err := cc.payments.CreatePayment(c.Request.Context(), p, in)
	if errors.Is(err, services.ErrPaymentFailed) {
		c.JSON(http.StatusPaymentRequired, gin.H{"ok": false, "message": "Error with payment", "transaction": txn})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, txn)
}

// POST /customer/orders
func (cc *CustomerController) CreateOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationError(c, err)
		return
	}
	order, err := cc.orders.CreateOrder(c.Request.Context(), p, in)
	if errors.Is(err, services.ErrInvalidTransaction) {
		resp.BadRequest(c, "Error with create order")
		return
	}
	if err != nil {
		customerFail(c, err, "Error with creating order")
		return
	}
	resp.OK(c, order)
}

// GET /customer/orders
func (cc *CustomerController) GetOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := cc.orders.GetOrders(c.Request.Context(), p)
	if err != nil {
		customerFail(c, err, "Error with getting orders")
		return
	}
	resp.OK(c, orders)
}

// GET /customer/orders/:id
func (cc *CustomerController) GetOrderByID(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := cc.orders.GetOrderByID(c.Request.Context(), p, c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, "Order not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /customer/offers/verify/:id
func (cc *CustomerController) VerifyOffer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	offer, err := cc.payments.VerifyOffer(c.Request.Context(), p, c.Param("id"))
	if errors.Is(err, services.ErrOfferNotValid) {
		resp.BadRequest(c, "Offer is not valid!")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Offer is valid", "offer": offer})
}
