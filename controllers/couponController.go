package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetCoupons() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.M{"created_at": -1})
		result, err := couponCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing coupons"})
			return
		}
		var allCoupons []bson.M
		if err := result.All(ctx, &allCoupons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing coupons"})
			return
		}
		c.JSON(http.StatusOK, allCoupons)
	}
}

func CreateCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var coupon models.Coupon

		if err := c.BindJSON(&coupon); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))

		validationErr := validate.Struct(&coupon)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if coupon.Discount_type == models.DiscountPercentage && coupon.Value > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentage discount must be between 0 and 100"})
			return
		}

		count, err := couponCollection.CountDocuments(ctx, bson.M{"code": coupon.Code})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking coupon code"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "coupon code already exists"})
			return
		}

		coupon.ID = primitive.NewObjectID()
		coupon.Coupon_id = coupon.ID.Hex()
		coupon.Used_count = 0
		coupon.Active = true
		coupon.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		result, err := couponCollection.InsertOne(ctx, coupon)
		if err != nil {
			msg := fmt.Sprintf("coupon was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		couponId := c.Param("coupon_id")

		result, err := couponCollection.DeleteOne(ctx, bson.M{"coupon_id": couponId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "coupon delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": models.ErrCouponNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "coupon deleted"})
	}
}

// DeleteExpiredCoupons removes every coupon whose validity window has passed.
// Historical orders keep their stored discount, so this is safe.
func DeleteExpiredCoupons() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{
			"valid_to": bson.M{
				"$gt": time.Time{},
				"$lt": time.Now(),
			},
		}
		result, err := couponCollection.DeleteMany(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while deleting expired coupons"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": result.DeletedCount})
	}
}
