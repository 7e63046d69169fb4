package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/database"
	middleware "github.com/parshwa12367556/Patilwada-Hotel/middleware"
	routes "github.com/parshwa12367556/Patilwada-Hotel/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// One-time setup: default admin account and starter menu. Idempotent, so
	// restarting the process is always safe.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatalf("Error creating default admin: %v", err)
	}
	if err := database.SeedFoods(ctx); err != nil {
		log.Fatalf("Error seeding food items: %v", err)
	}
	cancel()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:9000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// API routes
	routes.UserRoutes(router)
	router.Use(middleware.Authentication())
	routes.AuthedUserRoutes(router)
	routes.FoodRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.CouponRoutes(router)
	routes.ServiceRoutes(router)

	router.Run(":" + port)
}
