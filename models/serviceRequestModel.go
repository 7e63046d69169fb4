package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ServicePending    = "PENDING"
	ServiceInProgress = "IN_PROGRESS"
	ServiceCompleted  = "COMPLETED"
	ServiceCancelled  = "CANCELLED"
)

type ServiceRequest struct {
	ID           primitive.ObjectID `bson:"_id"`
	Request_id   string             `json:"request_id"`
	User_id      string             `json:"user_id"`
	Service_type *string            `json:"service_type" validate:"required,eq=housekeeping|eq=laundry|eq=maintenance|eq=wake-up-call|eq=other"`
	Description  *string            `json:"description"`
	Status       string             `json:"status"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}

func ValidServiceStatus(status string) bool {
	switch status {
	case ServicePending, ServiceInProgress, ServiceCompleted, ServiceCancelled:
		return true
	}
	return false
}
