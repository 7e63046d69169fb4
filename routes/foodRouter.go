package routes

import (
	controller "github.com/parshwa12367556/Patilwada-Hotel/controllers"
	"github.com/parshwa12367556/Patilwada-Hotel/middleware"

	"github.com/gin-gonic/gin"
)

func FoodRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/foods", controller.GetFoods())
	incomingRoutes.GET("/foods/:food_id", controller.GetFood())
	incomingRoutes.POST("/foods", middleware.AdminOnly(), controller.CreateFood())
	incomingRoutes.PATCH("/foods/:food_id", middleware.AdminOnly(), controller.UpdateFood())
	incomingRoutes.DELETE("/foods/:food_id", middleware.AdminOnly(), controller.DeleteFood())
}
