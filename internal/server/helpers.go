package server

import (
	"errors"
	"strconv"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForCode maps application error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case "UNAUTHENTICATED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "DUPLICATE":
		return fiber.StatusConflict
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError formats any error as a JSON error response with the right status.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return models.RespondWithError(c, statusForCode(appErr.Code), appErr)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// parseIDParam parses the ":id" route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid id")
	}
	return uint(id), nil
}

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
