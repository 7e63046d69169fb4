package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/database"
	"github.com/parshwa12367556/Patilwada-Hotel/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var notificationCollection *mongo.Collection = database.OpenCollection(database.Client, "notification")

// recordNotification stores an order event for the guest. Best effort: a
// failed insert never fails the request that triggered it.
func recordNotification(ctx context.Context, order models.Order, event string, message string) {
	notification := models.Notification{
		ID:       primitive.NewObjectID(),
		User_id:  order.User_id,
		Order_id: order.Order_id,
		Event:    event,
		Message:  message,
		Is_read:  false,
	}
	notification.Notification_id = notification.ID.Hex()
	notification.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	if _, err := notificationCollection.InsertOne(ctx, notification); err != nil {
		log.Println("notification insert failed:", err)
	}
}

func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

		opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(50)
		result, err := notificationCollection.Find(ctx, bson.M{"user_id": userId}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		var allNotifications []bson.M
		if err := result.All(ctx, &allNotifications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		c.JSON(http.StatusOK, allNotifications)
	}
}

func MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")
		notificationId := c.Param("notification_id")

		result, err := notificationCollection.UpdateOne(
			ctx,
			bson.M{"notification_id": notificationId, "user_id": userId},
			bson.D{{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "notification update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
	}
}
