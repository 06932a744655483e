package server

import (
	"errors"
	"fmt"
	"strconv"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam extracts a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, models.NewValidationError(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return uint(v), nil
}

// statusForError maps application error codes onto HTTP status codes.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		}
	}
	return fiber.StatusInternalServerError
}

// fail writes the error with its mapped status code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
