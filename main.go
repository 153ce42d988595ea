package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/IngaMaholwana/blogfastapi/config"
	"github.com/IngaMaholwana/blogfastapi/database"
	"github.com/IngaMaholwana/blogfastapi/handlers"
	"github.com/IngaMaholwana/blogfastapi/repositories"
	"github.com/IngaMaholwana/blogfastapi/routes"
	"github.com/IngaMaholwana/blogfastapi/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	userStore := repositories.NewUserStore()
	postStore := repositories.NewPostStore()
	commentStore := repositories.NewCommentStore()

	userService := services.NewUserService(userStore, cfg.Token)
	postService := services.NewPostService(postStore, userStore, commentStore)
	commentService := services.NewCommentService(commentStore, postStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	routes.SetupRoutes(app, db,
		handlers.NewUserHandler(userService),
		handlers.NewPostHandler(postService),
		handlers.NewCommentHandler(commentService),
	)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
