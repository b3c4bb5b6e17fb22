package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/response"
)

var badgeErrors = []error{
	badge.ErrInvalidInput,
	badge.ErrTemplateNotFound,
	badge.ErrCapacity,
	badge.ErrMerge,
}

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	for _, target := range badgeErrors {
		if errors.Is(err, target) {
			status, msg := BadgeErrorStatus(err)
			return c.Status(status).JSON(response.Error(msg))
		}
	}

	slog.Error("Unhandled error", "error", err, "path", c.Path(), "method", c.Method())
	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
