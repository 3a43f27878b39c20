// main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"portfolio-api/config"
	"portfolio-api/controllers"
	"portfolio-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer config.DisconnectDB()

	// Initialize NATS for the media processing pipeline
	nc, err := controllers.InitNATS()
	if err != nil {
		log.Printf("Warning: media pipeline disabled: %v", err)
		// Continue without NATS as it's not critical for the API to function
	} else {
		defer controllers.CloseNATS()
	}

	// Set up Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    25 * 1024 * 1024, // uploads go through here
		ErrorHandler: customErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	h := controllers.New(db, nc)
	routes.SetupRoutes(app, h)

	// Media processing result intake (HTTP callback + NATS subscriptions)
	if err := h.Pipeline.InitCallbackHandlers(app); err != nil {
		log.Printf("Warning: Failed to initialize callback handlers: %v", err)
	}

	// Start the server in a goroutine
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		log.Printf("Starting server on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}

	log.Println("Server successfully shutdown")
}

// Custom error handler for better error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Default 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Return JSON response with error message
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
