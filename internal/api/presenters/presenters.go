package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	body := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(code).JSON(body)
}

// ValidationErrorResponse reports a 422 with one entry per violated field.
// Non-validator errors (malformed body, bad path param) become a single
// generic entry.
func ValidationErrorResponse(c *fiber.Ctx, message string, err error) error {
	fieldErrors := make([]FieldError, 0)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	} else if err != nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "body", Message: err.Error()})
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"errors":  fieldErrors,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return "value below minimum of " + fe.Param()
	case "max":
		return "value above maximum of " + fe.Param()
	default:
		return "failed on " + fe.Tag() + " validation"
	}
}
