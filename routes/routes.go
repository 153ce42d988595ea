package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/handlers"
	"github.com/IngaMaholwana/blogfastapi/middleware"
)

// SetupRoutes registers every endpoint behind the per-request transaction
// middleware. The search route is registered before /posts/:id so "search"
// is not parsed as a post id.
func SetupRoutes(app *fiber.App, db *gorm.DB, users *handlers.UserHandler, posts *handlers.PostHandler, comments *handlers.CommentHandler) {
	app.Use(middleware.DBTransaction(db))

	app.Post("/users/register", users.Register)
	app.Post("/users/token", users.Login)

	app.Post("/posts", posts.Create)
	app.Get("/posts", posts.List)
	app.Get("/posts/search", posts.Search)
	app.Get("/posts/:id", posts.Get)
	app.Put("/posts/:id", posts.Update)
	app.Delete("/posts/:id", posts.Delete)

	app.Post("/comments", comments.Create)
	app.Get("/comments/:post_id", comments.List)
}
