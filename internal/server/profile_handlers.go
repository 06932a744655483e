package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/user/profile/:userId
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	profile, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/user/profile/:userId
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.userService.UpdateProfile(c.UserContext(), userID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}
