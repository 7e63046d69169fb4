package routes

import (
	controller "github.com/parshwa12367556/Patilwada-Hotel/controllers"
	"github.com/parshwa12367556/Patilwada-Hotel/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
}

func AuthedUserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/users", middleware.AdminOnly(), controller.GetUsers())
	incomingRoutes.GET("/users/:user_id", controller.GetUser())
	incomingRoutes.PATCH("/users/:user_id", controller.UpdateUser())
	incomingRoutes.DELETE("/users/:user_id", middleware.AdminOnly(), controller.DeleteUser())
	incomingRoutes.GET("/notifications", controller.GetNotifications())
	incomingRoutes.PATCH("/notifications/:notification_id/read", controller.MarkNotificationRead())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
