package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/middleware"
	"github.com/IngaMaholwana/blogfastapi/services"
)

// CommentHandler handles comment creation and listing.
type CommentHandler struct {
	Comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

type commentRequest struct {
	Content string `json:"content"`
}

// Create handles POST /comments?post_id=.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	postID, err := queryUint(c, "post_id")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.ValidationError{Message: "Failed to parse request body"}
	}

	comment, err := h.Comments.Create(middleware.Session(c), postID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(comment)
}

// List handles GET /comments/:post_id. A post with no comments yields an
// empty array, not an error.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := paramUint(c, "post_id")
	if err != nil {
		return err
	}

	comments, err := h.Comments.ListByPost(middleware.Session(c), postID)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}
