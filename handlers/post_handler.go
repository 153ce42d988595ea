package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/middleware"
	"github.com/IngaMaholwana/blogfastapi/services"
)

// PostHandler handles blog post CRUD and search requests.
type PostHandler struct {
	Posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{Posts: posts}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles POST /posts?user_id=.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	ownerID, err := queryUint(c, "user_id")
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.ValidationError{Message: "Failed to parse request body"}
	}

	post, err := h.Posts.Create(middleware.Session(c), ownerID, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// List handles GET /posts?skip=&limit=.
func (h *PostHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 0)

	posts, err := h.Posts.List(middleware.Session(c), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(middleware.Session(c), id)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// Update handles PUT /posts/:id. Both fields are replaced wholesale.
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.ValidationError{Message: "Failed to parse request body"}
	}

	post, err := h.Posts.Update(middleware.Session(c), id, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// Delete handles DELETE /posts/:id and returns the deleted snapshot.
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	post, err := h.Posts.Delete(middleware.Session(c), id)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// Search handles GET /posts/search?query=.
func (h *PostHandler) Search(c *fiber.Ctx) error {
	posts, err := h.Posts.Search(middleware.Session(c), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, &domain.ValidationError{Message: "Invalid " + name}
	}
	return uint(n), nil
}

func queryUint(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, &domain.ValidationError{Message: "Invalid " + name}
	}
	return uint(n), nil
}
