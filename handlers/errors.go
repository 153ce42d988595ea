package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/IngaMaholwana/blogfastapi/domain"
)

// ErrorHandler turns domain errors into status codes and the JSON error
// body. Anything outside the taxonomy becomes a generic 500 so storage
// failures never leak details to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(domain.ErrorResponse{Message: fiberErr.Message})
	}

	code := domain.StatusCode(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		message = "Internal server error"
	}
	return c.Status(code).JSON(domain.ErrorResponse{Message: message})
}
