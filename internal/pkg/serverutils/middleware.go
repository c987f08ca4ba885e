package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers panics and normalizes unhandled errors into
// the common envelope, so one misbehaving request never takes down the
// process.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, fmt.Sprintf("internal error: %v", r)))
			}
		}()

		if err := c.Next(); err != nil {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(ErrorResponse(code, err.Error()))
		}
		return nil
	}
}
