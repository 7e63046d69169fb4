package routes

import (
	controller "github.com/parshwa12367556/Patilwada-Hotel/controllers"
	"github.com/parshwa12367556/Patilwada-Hotel/middleware"

	"github.com/gin-gonic/gin"
)

func CouponRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/coupons", middleware.AdminOnly(), controller.GetCoupons())
	incomingRoutes.POST("/coupons", middleware.AdminOnly(), controller.CreateCoupon())
	incomingRoutes.DELETE("/coupons/:coupon_id", middleware.AdminOnly(), controller.DeleteCoupon())
	incomingRoutes.POST("/coupons/delete-expired", middleware.AdminOnly(), controller.DeleteExpiredCoupons())
}
