package controllers

import (
	"errors"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type ShoppingController struct {
	svc *services.ShoppingService
}

func NewShoppingController(svc *services.ShoppingService) *ShoppingController {
	return &ShoppingController{svc: svc}
}

func shoppingRespond[T any](c *gin.Context, out T, err error) {
	switch {
	case errors.Is(err, services.ErrNoFoodAvailable):
		resp.NotFound(c, "No food available")
	case errors.Is(err, services.ErrNoOffers):
		resp.NotFound(c, "Offers not found")
	case err != nil:
		fail(c, err)
	default:
		resp.OK(c, out)
	}
}

// GET /shopping/:pincode
func (sc *ShoppingController) GetFoodAvailability(c *gin.Context) {
	out, err := sc.svc.FoodAvailability(c.Request.Context(), c.Param("pincode"))
	shoppingRespond(c, out, err)
}

// GET /shopping/top-restaurants/:pincode
func (sc *ShoppingController) GetTopRestaurants(c *gin.Context) {
	out, err := sc.svc.TopRestaurants(c.Request.Context(), c.Param("pincode"))
	shoppingRespond(c, out, err)
}

// GET /shopping/food-in-30-min/:pincode
func (sc *ShoppingController) GetFoodsIn30Min(c *gin.Context) {
	out, err := sc.svc.FoodsIn30Min(c.Request.Context(), c.Param("pincode"))
	shoppingRespond(c, out, err)
}

// GET /shopping/search/:pincode
func (sc *ShoppingController) SearchFoods(c *gin.Context) {
	out, err := sc.svc.SearchFoods(c.Request.Context(), c.Param("pincode"))
	shoppingRespond(c, out, err)
}

// GET /shopping/offers/:pincode
func (sc *ShoppingController) GetAvailableOffers(c *gin.Context) {
	out, err := sc.svc.AvailableOffers(c.Request.Context(), c.Param("pincode"))
	shoppingRespond(c, out, err)
}

// GET /shopping/restaurant/:id
func (sc *ShoppingController) RestaurantByID(c *gin.Context) {
	out, err := sc.svc.RestaurantByID(c.Request.Context(), c.Param("id"))
	shoppingRespond(c, out, err)
}
