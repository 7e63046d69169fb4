package routes

import (
	"github.com/parshwa12367556/Patilwada-Hotel/controllers"
	"github.com/parshwa12367556/Patilwada-Hotel/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.POST("/orders", controllers.Checkout())
	incomingRoutes.POST("/orders/:order_id/cancel", controllers.CancelOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", middleware.AdminOnly(), controllers.UpdateOrderStatus())
	incomingRoutes.GET("/kds/orders", middleware.AdminOnly(), controllers.GetKitchenOrders())
}
