package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/attajnr2001/adwumawura-2/cache"
	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	_, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ MongoDB Connection Error: %v", err)
	}

	if err := database.EnsureIndexes(); err != nil {
		log.Fatalf("❌ MongoDB Index Error: %v", err)
	}

	cache.InitRedis(config.AppConfig.RedisAddr)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Serve uploaded profile images
	r.Static("/uploads", config.AppConfig.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Artisan Hub API"})
	})

	// Setup API routes
	routes.SetupAuthRoutes(r)
	routes.SetupUserRoutes(r)
	routes.SetupJobRoutes(r)
	routes.SetupMessageRoutes(r)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		if err := r.Run(":" + config.AppConfig.PORT); err != nil {
			log.Fatalf("❌ Server Startup Error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	cache.Close()
	database.Disconnect()
}
