package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a per-guest record of an order event, kept so guests see
// status changes even when no websocket client was connected at the time.
type Notification struct {
	ID              primitive.ObjectID `bson:"_id"`
	Notification_id string             `json:"notification_id"`
	User_id         string             `json:"user_id"`
	Order_id        string             `json:"order_id"`
	Event           string             `json:"event"` // "newOrder" or "statusChanged"
	Message         string             `json:"message"`
	Is_read         bool               `json:"is_read"`
	Created_at      time.Time          `json:"created_at"`
}
