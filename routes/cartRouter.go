package routes

import (
	controller "github.com/parshwa12367556/Patilwada-Hotel/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/cart", controller.GetCart())
	incomingRoutes.POST("/cart/items", controller.AddCartItem())
	incomingRoutes.PATCH("/cart/items/:item_id", controller.UpdateCartItem())
	incomingRoutes.DELETE("/cart/items/:item_id", controller.RemoveCartItem())
	incomingRoutes.POST("/cart/coupon", controller.ApplyCoupon())
	incomingRoutes.DELETE("/cart/coupon", controller.RemoveCoupon())
}
