package controllers

import (
	"context"
	"fmt"
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

var serviceRequestCollection *mongo.Collection = database.OpenCollection(database.Client, "serviceRequest")

type ServiceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func CreateServiceRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var request models.ServiceRequest

		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&request)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		request.ID = primitive.NewObjectID()
		request.Request_id = request.ID.Hex()
		request.User_id = c.GetString("uid")
		request.Status = models.ServicePending
		request.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		request.Updated_at = request.Created_at

		result, err := serviceRequestCollection.InsertOne(ctx, request)
		if err != nil {
			msg := fmt.Sprintf("service request was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetServiceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if c.GetString("user_role") == "ADMIN" {
			if status := c.Query("status"); status != "" && status != "all" {
				filter["status"] = status
			}
		} else {
			filter["user_id"] = c.GetString("uid")
		}

		opts := options.Find().SetSort(bson.M{"created_at": -1})
		result, err := serviceRequestCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing service requests"})
			return
		}
		var allRequests []bson.M
		if err := result.All(ctx, &allRequests); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing service requests"})
			return
		}
		c.JSON(http.StatusOK, allRequests)
	}
}

func UpdateServiceStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		requestId := c.Param("request_id")

		var req ServiceStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidServiceStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service status"})
			return
		}

		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		result, err := serviceRequestCollection.UpdateOne(
			ctx,
			bson.M{"request_id": requestId},
			bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "status", Value: req.Status},
					{Key: "updated_at", Value: updatedAt},
				}},
			},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "service request update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "service request not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"request_id": requestId, "status": req.Status})
	}
}
