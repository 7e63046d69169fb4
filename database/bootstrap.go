package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// EnsureDefaultAdmin creates the front-desk admin account on first start.
// Safe to call on every boot: an existing admin is left untouched.
func EnsureDefaultAdmin(ctx context.Context) error {
	userCollection := OpenCollection(Client, "user")

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@patilwada-hotel.com"
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return err
	}

	name := "Admin"
	phone := "0000000000"
	location := "Front Desk"
	role := "ADMIN"
	hashedStr := string(hashed)

	admin := models.User{
		ID:        primitive.NewObjectID(),
		Name:      &name,
		Email:     &email,
		Password:  &hashedStr,
		Phone:     &phone,
		Location:  &location,
		User_role: &role,
	}
	admin.User_id = admin.ID.Hex()
	admin.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	admin.Updated_at = admin.Created_at

	if _, err := userCollection.InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Printf("Default admin created (email: %s)", email)
	return nil
}

// SeedFoods inserts a starter menu when the food collection is empty.
func SeedFoods(ctx context.Context) error {
	foodCollection := OpenCollection(Client, "food")

	count, err := foodCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seed struct {
		name        string
		category    string
		price       float64
		description string
	}
	seeds := []seed{
		{"Club Sandwich", "sandwich", 450.0, "Triple-decker sandwich with chicken, bacon, lettuce, tomato, and mayo. Served with fries."},
		{"Caesar Salad", "starters", 350.0, "Crisp romaine lettuce, parmesan cheese, croutons, and caesar dressing."},
		{"Grilled Salmon", "main-course", 850.0, "Fresh Atlantic salmon grilled to perfection, served with asparagus and lemon butter sauce."},
		{"Butter Chicken", "main-course", 650.0, "Tender chicken cooked in a rich tomato and butter gravy. Served with naan."},
		{"Continental Breakfast", "breakfast", 550.0, "Assorted pastries, toast, butter, jam, fresh fruit, and coffee or tea."},
		{"Cappuccino", "beverages", 250.0, "Freshly brewed espresso with steamed milk and foam."},
	}

	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	available := true
	image := "default-food.jpg"

	docs := []interface{}{}
	for i := range seeds {
		food := models.Food{
			ID:           primitive.NewObjectID(),
			Name:         &seeds[i].name,
			Category:     &seeds[i].category,
			Price:        &seeds[i].price,
			Description:  &seeds[i].description,
			Food_image:   &image,
			Is_available: &available,
			Created_at:   now,
			Updated_at:   now,
		}
		food.Food_id = food.ID.Hex()
		docs = append(docs, food)
	}

	if _, err := foodCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d food items", len(docs))
	return nil
}
