package handler

import (
	"github.com/gofiber/fiber/v2"
)

// messageResponse is the standard body for status/error responses.
type messageResponse struct {
	Message string `json:"message"`
}

// writeMessage writes a plain {"message": ...} JSON response.
func writeMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(messageResponse{Message: message})
}

// ErrorHandler returns a Fiber global error handler that renders unmatched
// routes, disallowed methods, and unexpected failures in the same
// {"message": ...} shape the handlers use.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeMessage(c, status, "Not Found")
		case fiber.StatusMethodNotAllowed:
			return writeMessage(c, status, "Method Not Allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeMessage(c, status, "Request body too large")
		default:
			return writeMessage(c, status, "Internal Server Error")
		}
	}
}
