package routes

import (
	"net/http"

	"fooddelivery/configs"
	"fooddelivery/controllers"
	"fooddelivery/entity"
	"fooddelivery/middlewares"
	"fooddelivery/services"
	"fooddelivery/ws"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP surface needs. main builds it once.
type Deps struct {
	Config *configs.Config

	Admin     *services.AdminService
	Vendors   *services.VendorService
	Customers *services.CustomerService
	Cart      *services.CartService
	Orders    *services.OrderService
	Payments  *services.PaymentService
	Delivery  *services.DeliveryService
	Shopping  *services.ShoppingService

	Feed *ws.OrderFeed
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.Static("/images", cfg.ImageDir)

	// Controllers
	adminCtrl := controllers.NewAdminController(d.Admin)
	vendorCtrl := controllers.NewVendorController(d.Vendors, cfg.ImageDir)
	customerCtrl := controllers.NewCustomerController(d.Customers, d.Cart, d.Orders, d.Payments)
	deliveryCtrl := controllers.NewDeliveryController(d.Delivery)
	shoppingCtrl := controllers.NewShoppingController(d.Shopping)

	// Admin
	r.POST("/admin/login", adminCtrl.Login)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/vendor", adminCtrl.CreateVendor)
		admin.GET("/vendors", adminCtrl.GetVendors)
		admin.GET("/vendors/:id", adminCtrl.GetVendorByID)
		admin.GET("/transactions", adminCtrl.GetTransactions)
		admin.GET("/transactions/:id", adminCtrl.GetTransactionByID)
		admin.PUT("/delivery/verify", adminCtrl.VerifyDeliveryUser)
		admin.GET("/delivery/users", adminCtrl.GetDeliveryUsers)
	}

	// Vendor
	r.POST("/vendor/login", vendorCtrl.Login)
	vendor := r.Group("/vendor", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleVendor))
	{
		vendor.GET("/profile", vendorCtrl.GetProfile)
		vendor.PATCH("/profile", vendorCtrl.UpdateProfile)
		vendor.PATCH("/coverImage", vendorCtrl.UpdateCoverImage)
		vendor.PATCH("/service", vendorCtrl.UpdateService)

		vendor.POST("/food", vendorCtrl.AddFood)
		vendor.GET("/foods", vendorCtrl.GetFoods)

		vendor.GET("/orders", vendorCtrl.GetCurrentOrders)
		vendor.GET("/orders/:id", vendorCtrl.GetOrderDetails)
		vendor.PUT("/orders/:id/process", vendorCtrl.ProcessOrder)

		vendor.GET("/offers", vendorCtrl.GetOffers)
		vendor.POST("/offer", vendorCtrl.AddOffer)
		vendor.PUT("/offer/:id", vendorCtrl.EditOffer)
	}
	// browsers cannot set headers on a websocket handshake
	r.GET("/vendor/orders/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RoleVendor), d.Feed.HandleWebSocket)

	// Customer
	r.POST("/customer/signup", customerCtrl.Signup)
	r.POST("/customer/login", customerCtrl.Login)
	customer := r.Group("/customer", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer))
	{
		customer.PATCH("/verify", customerCtrl.Verify)
		customer.GET("/otp", customerCtrl.RequestOtp)
		customer.GET("/profile", customerCtrl.GetProfile)
		customer.PATCH("/profile", customerCtrl.EditProfile)

		customer.POST("/cart", customerCtrl.AddToCart)
		customer.GET("/cart", customerCtrl.GetCart)
		customer.DELETE("/cart", customerCtrl.DeleteCart)

		customer.POST("/create-payment", customerCtrl.CreatePayment)

		customer.POST("/orders", customerCtrl.CreateOrder)
		customer.GET("/orders", customerCtrl.GetOrders)
		customer.GET("/orders/:id", customerCtrl.GetOrderByID)

		customer.POST("/offers/verify/:id", customerCtrl.VerifyOffer)
	}

	// Delivery
	r.POST("/delivery/signup", deliveryCtrl.Signup)
	r.POST("/delivery/login", deliveryCtrl.Login)
	delivery := r.Group("/delivery", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleDelivery))
	{
		delivery.PUT("/changeStatus", deliveryCtrl.UpdateStatus)
		delivery.GET("/profile", deliveryCtrl.GetProfile)
		delivery.PATCH("/profile", deliveryCtrl.EditProfile)
	}

	// Shopping (public)
	shop := r.Group("/shopping")
	{
		shop.GET("/:pincode", shoppingCtrl.GetFoodAvailability)
		shop.GET("/top-restaurants/:pincode", shoppingCtrl.GetTopRestaurants)
		shop.GET("/food-in-30-min/:pincode", shoppingCtrl.GetFoodsIn30Min)
		shop.GET("/search/:pincode", shoppingCtrl.SearchFoods)
		shop.GET("/offers/:pincode", shoppingCtrl.GetAvailableOffers)
		shop.GET("/restaurant/:id", shoppingCtrl.RestaurantByID)
	}
}
