package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFoodListFilter(t *testing.T) {
	t.Run("guests only see available items", func(t *testing.T) {
		filter := foodListFilter("GUEST", "", "")
		assert.Equal(t, bson.M{"is_available": true}, filter)
	})

	t.Run("admins see switched-off items too", func(t *testing.T) {
		filter := foodListFilter("ADMIN", "", "")
		assert.NotContains(t, filter, "is_available")
	})

	t.Run("category filter is merged", func(t *testing.T) {
		filter := foodListFilter("GUEST", "beverages", "")
		assert.Equal(t, true, filter["is_available"])
		assert.Equal(t, "beverages", filter["category"])
	})

	t.Run("category all means no category filter", func(t *testing.T) {
		filter := foodListFilter("ADMIN", "all", "")
		assert.NotContains(t, filter, "category")
	})

	t.Run("search builds a name or description match", func(t *testing.T) {
		filter := foodListFilter("GUEST", "", "salmon")
		assert.Contains(t, filter, "$or")
	})
}
