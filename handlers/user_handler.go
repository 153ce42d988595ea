package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/middleware"
	"github.com/IngaMaholwana/blogfastapi/services"
)

// UserHandler handles registration and login requests.
type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.ValidationError{Message: "Failed to parse request body"}
	}

	user, err := h.Users.Register(middleware.Session(c), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(user.Out())
}

// Login handles POST /users/token. Credentials arrive as form fields; the
// response carries a bearer access token.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.Users.Login(middleware.Session(c), username, password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
