package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID           primitive.ObjectID `bson:"_id"`
	Food_id      string             `json:"food_id"`
	Name         *string            `json:"name" validate:"required,min=2,max=100"`
	Category     *string            `json:"category" validate:"required,eq=breakfast|eq=starters|eq=main-course|eq=sandwich|eq=beverages|eq=dessert"`
	Price        *float64           `json:"price" validate:"required,gt=0"`
	Description  *string            `json:"description"`
	Food_image   *string            `json:"food_image"`
	Is_available *bool              `json:"is_available"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}
