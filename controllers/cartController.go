package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/database"
	"github.com/parshwa12367556/Patilwada-Hotel/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "cart")
var couponCollection *mongo.Collection = database.OpenCollection(database.Client, "coupon")

type AddCartItemRequest struct {
	Food_id      string `json:"food_id" validate:"required"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions" validate:"max=200"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// CartLineView is a cart line joined with the current catalog entry.
type CartLineView struct {
	Item_id      string  `json:"item_id"`
	Food_id      string  `json:"food_id"`
	Food_name    string  `json:"food_name"`
	Quantity     int     `json:"quantity"`
	Unit_price   float64 `json:"unit_price"`
	Line_total   float64 `json:"line_total"`
	Instructions string  `json:"instructions"`
	Available    bool    `json:"available"`
}

// domainErrorStatus maps model errors to HTTP statuses. Everything here is
// recoverable: the handler reports the error and leaves state unchanged.
func domainErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrCouponNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrItemUnavailable),
		errors.Is(err, models.ErrCouponExpired),
		errors.Is(err, models.ErrCouponExhausted):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// getOrCreateCart returns the user's cart document, creating an empty one on
// first use. One cart per user: the upsert makes concurrent first requests
// converge on a single document instead of racing a find-then-insert.
func getOrCreateCart(ctx context.Context, userId string) (models.Cart, error) {
	id := primitive.NewObjectID()
	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	upsert := true
	after := options.After
	opt := options.FindOneAndUpdateOptions{
		Upsert:         &upsert,
		ReturnDocument: &after,
	}

	var cart models.Cart
	err := cartCollection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userId},
		bson.M{"$setOnInsert": bson.M{
			"_id":         id,
			"cart_id":     id.Hex(),
			"items":       []models.CartItem{},
			"coupon_code": "",
			"created_at":  now,
			"updated_at":  now,
		}},
		&opt,
	).Decode(&cart)
	return cart, err
}

func saveCart(ctx context.Context, cart models.Cart) error {
	cart.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	upsert := true
	opt := options.ReplaceOptions{
		Upsert: &upsert,
	}
	_, err := cartCollection.ReplaceOne(ctx, bson.M{"user_id": cart.User_id}, cart, &opt)
	return err
}

// priceCartLines joins cart lines with the catalog at current prices. A line
// whose food is gone or switched off is marked unavailable; the caller
// decides whether that is fatal (checkout) or display-only (cart view).
func priceCartLines(ctx context.Context, items []models.CartItem) ([]CartLineView, error) {
	if len(items) == 0 {
		return []CartLineView{}, nil
	}

	foodIds := make([]string, 0, len(items))
	for _, item := range items {
		foodIds = append(foodIds, item.Food_id)
	}

	cursor, err := foodCollection.Find(ctx, bson.M{"food_id": bson.M{"$in": foodIds}})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}

	foodById := make(map[string]models.Food, len(foods))
	for _, food := range foods {
		foodById[food.Food_id] = food
	}

	lines := make([]CartLineView, 0, len(items))
	for _, item := range items {
		line := CartLineView{
			Item_id:      item.Item_id,
			Food_id:      item.Food_id,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		}
		if food, ok := foodById[item.Food_id]; ok {
			line.Food_name = *food.Name
			line.Available = food.Is_available != nil && *food.Is_available
			line.Unit_price = models.ToFixed(*food.Price, 2)
			line.Line_total = models.ToFixed(float64(item.Quantity)*line.Unit_price, 2)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// pricedLines keeps only available lines for the totals computation.
func pricedLines(lines []CartLineView) []models.PricedLine {
	priced := make([]models.PricedLine, 0, len(lines))
	for _, line := range lines {
		if line.Available {
			priced = append(priced, models.PricedLine{Quantity: line.Quantity, Unit_price: line.Unit_price})
		}
	}
	return priced
}

// effectiveCoupon drops a coupon the cart is still holding but which no
// longer validates, returning the reason so the view can surface it instead
// of showing a discount checkout would reject.
func effectiveCoupon(coupon *models.Coupon, now time.Time) (*models.Coupon, string) {
	if coupon == nil {
		return nil, ""
	}
	if err := coupon.Validate(now); err != nil {
		return nil, err.Error()
	}
	return coupon, ""
}

// findCouponByCode matches a coupon case-insensitively. Codes are stored
// uppercase, so the lookup just uppercases the input.
func findCouponByCode(ctx context.Context, code string) (models.Coupon, error) {
	var coupon models.Coupon
	err := couponCollection.FindOne(ctx, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return coupon, models.ErrCouponNotFound
	}
	return coupon, err
}

// cartCoupon loads the cart's applied coupon, if any. A coupon deleted after
// being applied is treated as no longer applied.
func cartCoupon(ctx context.Context, cart models.Cart) (*models.Coupon, error) {
	if cart.Coupon_code == "" {
		return nil, nil
	}
	coupon, err := findCouponByCode(ctx, cart.Coupon_code)
	if err == models.ErrCouponNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

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
		coupon, err := cartCoupon(ctx, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching coupon"})
			return
		}
		coupon, couponError := effectiveCoupon(coupon, time.Now())
		subtotal, discount, total := models.CartTotals(pricedLines(lines), coupon)

		response := gin.H{
			"cart_id":     cart.Cart_id,
			"items":       lines,
			"coupon_code": cart.Coupon_code,
			"subtotal":    subtotal,
			"discount":    discount,
			"total":       total,
		}
		if couponError != "" {
			response["coupon_error"] = couponError
		}
		c.JSON(http.StatusOK, response)
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

		var req AddCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&req)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if req.Quantity < 1 {
			c.JSON(domainErrorStatus(models.ErrInvalidQuantity), gin.H{"error": models.ErrInvalidQuantity.Error()})
			return
		}

		var food models.Food
		err := foodCollection.FindOne(ctx, bson.M{"food_id": req.Food_id}).Decode(&food)
		if err != nil || food.Is_available == nil || !*food.Is_available {
			c.JSON(domainErrorStatus(models.ErrItemUnavailable), gin.H{"error": models.ErrItemUnavailable.Error()})
			return
		}

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}

		item := models.CartItem{
			Item_id:      primitive.NewObjectID().Hex(),
			Food_id:      req.Food_id,
			Quantity:     req.Quantity,
			Instructions: req.Instructions,
		}
		item.Added_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		cart.Items = models.MergeCartItem(cart.Items, item)

		if err := saveCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    *food.Name + " added to cart",
			"cart_count": len(cart.Items),
		})
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")
		itemId := c.Param("item_id")

		var req UpdateCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}

		updated := make([]models.CartItem, 0, len(cart.Items))
		message := "cart updated"
		for _, item := range cart.Items {
			if item.Item_id == itemId {
				if req.Quantity < 1 {
					message = "item removed from cart"
					continue
				}
				item.Quantity = req.Quantity
			}
			updated = append(updated, item)
		}
		cart.Items = updated

		if err := saveCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "cart_count": len(cart.Items)})
	}
}

// RemoveCartItem is idempotent: removing an absent line is a no-op.
func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")
		itemId := c.Param("item_id")

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}

		kept := make([]models.CartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			if item.Item_id != itemId {
				kept = append(kept, item)
			}
		}
		cart.Items = kept

		if err := saveCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed from cart", "cart_count": len(cart.Items)})
	}
}

// ApplyCoupon stores a coupon code on the cart, replacing any previously
// applied one. At most one coupon is active per cart.
func ApplyCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

		var req ApplyCouponRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&req)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		coupon, err := findCouponByCode(ctx, req.Code)
		if err != nil {
			c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := coupon.Validate(time.Now()); err != nil {
			c.JSON(domainErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}
		cart.Coupon_code = coupon.Code
		if err := saveCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "coupon applied", "coupon_code": coupon.Code})
	}
}

func RemoveCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		userId := c.GetString("uid")

		cart, err := getOrCreateCart(ctx, userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching cart"})
			return
		}
		cart.Coupon_code = ""
		if err := saveCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "coupon removed"})
	}
}
