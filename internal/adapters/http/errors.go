package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, invalid_spacing, internal_error, etc.
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, 400, "bad_request", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, 500, "internal_error", msg)
}

// errGeneration maps a generation failure to its HTTP shape. All domain
// error kinds are caused by the supplied inputs, so they surface as 422
// with a kind-specific code; anything unrecognised is a 500.
func errGeneration(c *fiber.Ctx, err error) error {
	code := ""
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		code = "invalid_input"
	case errors.Is(err, domain.ErrDegenerateBaseline):
		code = "degenerate_baseline"
	case errors.Is(err, domain.ErrInvalidSpacing):
		code = "invalid_spacing"
	case errors.Is(err, domain.ErrProjection):
		code = "projection_error"
	case errors.Is(err, domain.ErrGeometry):
		code = "geometry_error"
	default:
		return errInternal(c, err.Error())
	}
	return newError(c, 422, code, err.Error())
}
