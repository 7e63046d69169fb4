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

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

type CheckoutRequest struct {
	Payment_method       string `json:"payment_method" validate:"required,eq=cash|eq=card|eq=room-charge"`
	Location             string `json:"location" validate:"required"`
	Phone                string `json:"phone"`
	Special_instructions string `json:"special_instructions" validate:"max=500"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// redeemCoupon consumes one use of the coupon as a single atomic
// read-modify-write: the usage check and the increment happen in one filtered
// UpdateOne, so two concurrent checkouts cannot both take the last use. When
// the filter misses, a follow-up read classifies the reason: the coupon may
// have been deactivated or expired since validation, not just exhausted.
func redeemCoupon(ctx context.Context, coupon *models.Coupon) error {
	filter := bson.M{"coupon_id": coupon.Coupon_id, "active": true}
	if coupon.Usage_limit > 0 {
		filter["$expr"] = bson.M{"$lt": bson.A{"$used_count", "$usage_limit"}}
	}
	result, err := couponCollection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"used_count": 1}})
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		var current models.Coupon
		if err := couponCollection.FindOne(ctx, bson.M{"coupon_id": coupon.Coupon_id}).Decode(&current); err != nil {
			return models.ErrCouponNotFound
		}
		if err := current.Validate(time.Now()); err != nil {
			return err
		}
		return models.ErrCouponExhausted
	}
	return nil
}

// unredeemCoupon compensates a redemption when the order insert fails after
// the counter was already bumped. A failed rollback leaks a coupon use, so it
// is at least logged.
func unredeemCoupon(ctx context.Context, coupon *models.Coupon) {
	_, err := couponCollection.UpdateOne(ctx, bson.M{"coupon_id": coupon.Coupon_id}, bson.M{"$inc": bson.M{"used_count": -1}})
	if err != nil {
		fmt.Println("coupon redemption rollback failed:", err)
	}
}

// checkoutLines strips the cart view down to what order assembly needs.
func checkoutLines(lines []CartLineView) []models.CheckoutLine {
	out := make([]models.CheckoutLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.CheckoutLine{
			Food_id:      line.Food_id,
			Food_name:    line.Food_name,
			Quantity:     line.Quantity,
			Unit_price:   line.Unit_price,
			Instructions: line.Instructions,
			Available:    line.Available,
		})
	}
	return out
}

// Checkout materializes the guest's cart into a durable order. Unit prices
// are snapshotted, totals are computed once here, the coupon (if any) is
// redeemed atomically, and the order is inserted with its lines embedded in a
// single document. The cart is cleared only after the order exists.
func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

		var req CheckoutRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&req)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}

		lines, err := priceCartLines(ctx, cart.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while pricing cart"})
			return
		}
		orderItems, err := models.BuildOrderItems(checkoutLines(lines))
		if err != nil {
			c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		coupon, err := cartCoupon(ctx, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching coupon"})
			return
		}
		if coupon != nil {
			if err := coupon.Validate(time.Now()); err != nil {
				c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
		}

		subtotal, discount, total := models.CartTotals(pricedLines(lines), coupon)

		if coupon != nil {
			// Re-checked at commit time: validation above is only advisory.
			if err := redeemCoupon(ctx, coupon); err != nil {
				c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
				return
			}
		}

		var order models.Order
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Order_number = models.GenerateOrderNumber()
		order.User_id = userId
		order.Items = orderItems
		order.Subtotal = subtotal
		order.Discount = discount
		order.Total = total
		if coupon != nil {
			order.Coupon_code = coupon.Code
		}
		order.Payment_method = req.Payment_method
		order.Status = models.StatusPending
		order.Location = req.Location
		order.Phone = req.Phone
		order.Special_instructions = req.Special_instructions
		order.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Updated_at = order.Created_at

		if _, err := orderCollection.InsertOne(ctx, order); err != nil {
			if coupon != nil {
				unredeemCoupon(ctx, coupon)
			}
			msg := fmt.Sprintf("order was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		cart.Items = []models.CartItem{}
		cart.Coupon_code = ""
		if err := saveCart(ctx, cart); err != nil {
			// Order exists, cart cleanup failed; guest just sees a stale cart.
			fmt.Println("cart clear failed after checkout:", err)
		}

		recordNotification(ctx, order, "newOrder", "Order "+order.Order_number+" placed")
		notifyClients(order)

		c.JSON(http.StatusOK, gin.H{
			"order_id":     order.Order_id,
			"order_number": order.Order_number,
			"subtotal":     order.Subtotal,
			"discount":     order.Discount,
			"total":        order.Total,
			"status":       order.Status,
		})
	}
}

func GetOrders() gin.HandlerFunc {
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
		result, err := orderCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []bson.M
		if err := result.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")
		var order models.Order

		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(domainErrorStatus(models.ErrOrderNotFound), gin.H{"error": models.ErrOrderNotFound.Error()})
			return
		}
		if order.User_id != c.GetString("uid") && c.GetString("user_role") != "ADMIN" {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// transitionOrder applies the status machine and persists the change with a
// guarded update: the filter pins the expected source status, so a concurrent
// transition on the same order loses cleanly instead of overwriting.
func transitionOrder(ctx context.Context, orderId string, newStatus string) (models.Order, error) {
	var order models.Order
	if !models.ValidStatus(newStatus) {
		return order, models.ErrInvalidTransition
	}

	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if err != nil {
		return order, models.ErrOrderNotFound
	}
	if !models.CanTransition(order.Status, newStatus) {
		return order, models.ErrInvalidTransition
	}

	updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	result, err := orderCollection.UpdateOne(
		ctx,
		bson.M{"order_id": orderId, "status": order.Status},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "status", Value: newStatus},
				{Key: "updated_at", Value: updatedAt},
			}},
		},
	)
	if err != nil {
		return order, err
	}
	if result.ModifiedCount == 0 {
		// Someone moved the order first; the requested source state is gone.
		return order, models.ErrInvalidTransition
	}
	order.Status = newStatus
	order.Updated_at = updatedAt
	return order, nil
}

func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var req TransitionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := transitionOrder(ctx, orderId, req.Status)
		if err != nil {
			c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		recordNotification(ctx, order, "statusChanged", "Order "+order.Order_number+" is now "+order.Status)
		notifyWaiter(order)
		c.JSON(http.StatusOK, gin.H{"order_id": order.Order_id, "status": order.Status})
	}
}

// CancelOrder lets a guest cancel their own order while it is still pending
// or preparing. Cancelling never refunds coupon usage: a coupon is consumed
// once applied to a submitted order.
func CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(domainErrorStatus(models.ErrOrderNotFound), gin.H{"error": models.ErrOrderNotFound.Error()})
			return
		}
		if order.User_id != c.GetString("uid") && c.GetString("user_role") != "ADMIN" {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}

		order, err = transitionOrder(ctx, orderId, models.StatusCancelled)
		if err != nil {
			c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		recordNotification(ctx, order, "statusChanged", "Order "+order.Order_number+" cancelled")
		notifyWaiter(order)
		c.JSON(http.StatusOK, gin.H{"order_id": order.Order_id, "status": order.Status})
	}
}

// GetKitchenOrders feeds the kitchen display: active orders, oldest first.
func GetKitchenOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusPreparing}}}
		opts := options.Find().SetSort(bson.M{"created_at": 1})

		result, err := orderCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing kitchen orders"})
			return
		}
		var activeOrders []models.Order
		if err := result.All(ctx, &activeOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing kitchen orders"})
			return
		}
		c.JSON(http.StatusOK, activeOrders)
	}
}
