package routes

import (
	controller "github.com/parshwa12367556/Patilwada-Hotel/controllers"
	"github.com/parshwa12367556/Patilwada-Hotel/middleware"

	"github.com/gin-gonic/gin"
)

func ServiceRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/services", controller.CreateServiceRequest())
	incomingRoutes.GET("/services", controller.GetServiceRequests())
	incomingRoutes.PATCH("/services/:request_id/status", middleware.AdminOnly(), controller.UpdateServiceStatus())
}
