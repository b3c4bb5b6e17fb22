package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/internal/badge"
)

// BadgeErrorStatus maps a render failure to the HTTP status and message sent
// back to the caller.
func BadgeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, badge.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid badge request"
	case errors.Is(err, badge.ErrTemplateNotFound):
		return fiber.StatusServiceUnavailable, "Badge template unavailable"
	case errors.Is(err, badge.ErrCapacity):
		return fiber.StatusInternalServerError, "Scan code could not be generated"
	case errors.Is(err, badge.ErrMerge):
		return fiber.StatusInternalServerError, "Badge could not be assembled"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "Badge render timed out"
	default:
		return fiber.StatusInternalServerError, "Badge render failed"
	}
}
