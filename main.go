package main

import (
	"os"
	"time"

	"vtc-onboarding/database"
	"vtc-onboarding/database/seeders"
	"vtc-onboarding/logger"
	"vtc-onboarding/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024, // 10MB body limit
	})
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	if err := seeders.SeedHubs(db); err != nil {
		logger.Error("Failed to seed hubs", err)
	}

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on " + appHost + ":" + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
