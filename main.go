package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/graph"
	graphqlRoutes "learnhub/routers/graphqlRoutes"
	"learnhub/service"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}

	store := database.NewStore(db)
	authService := service.NewAuthService(store)
	courseService := service.NewCourseService(store)

	schema, err := graph.NewSchema(authService, courseService)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	graphqlRoutes.SetupGraphQLRoutes(app, schema)

	// Nightly repair of the two enrollment views
	utils.InitializeReconciler(store)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
