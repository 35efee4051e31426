package middleware

import (
    "errors"
    "net/http"

    "github.com/bilgisen/headlines/internal/logger"
    "github.com/go-playground/validator/v10"
    "github.com/gofiber/fiber/v2"
)

// ValidatedKey is the Locals key the validated body is stored under
const ValidatedKey = "validated"

var validate = validator.New()

// ValidateBody parses the request body into a fresh T, validates it and
// stores the *T in the context under ValidatedKey
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(T)

		// Parse request body into the struct
		if err := c.BodyParser(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
				"msg":   err.Error(),
			})
		}

		// Validate the struct
		if err := validate.Struct(body); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			fields := make(map[string]string)
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}

			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": fields,
			})
		}

		c.Locals(ValidatedKey, body)

		return c.Next()
	}
}

// Validated returns the body stored by ValidateBody
func Validated[T any](c *fiber.Ctx) (*T, bool) {
	body, ok := c.Locals(ValidatedKey).(*T)
	return body, ok
}

// ErrorHandler is a middleware that handles errors in a consistent way
func ErrorHandler(c *fiber.Ctx, err error) error {
    // Default status code
    code := fiber.StatusInternalServerError

    // Check if it's a fiber error
    var fe *fiber.Error
    if errors.As(err, &fe) {
        code = fe.Code
    }

    // Log the error
    logger.Get().Error().
        Err(err).
        Str("method", c.Method()).
        Str("path", c.Path()).
        Int("status", code).
        Msg("HTTP error")

    // Return JSON response
    return c.Status(code).JSON(fiber.Map{
        "error": http.StatusText(code),
    })
}
