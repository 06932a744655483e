package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

type engagementRequest struct {
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
}

// LikePost handles POST /api/post/like-post, toggling the caller's like.
func (s *Server) LikePost(c *fiber.Ctx) error {
	var req engagementRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.PostID == 0 {
		return fail(c, models.NewValidationError("user_id and post_id are required"))
	}

	message, err := s.engagementService.ToggleLike(c.UserContext(), req.UserID, req.PostID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

// CommentPost handles POST /api/post/comment-post
func (s *Server) CommentPost(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"user_id"`
		PostID  uint   `json:"post_id"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.PostID == 0 {
		return fail(c, models.NewValidationError("user_id, post_id and comment are required"))
	}

	comment, err := s.engagementService.AddComment(c.UserContext(), req.UserID, req.PostID, req.Comment)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// BookmarkPost handles POST /api/post/bookmark-post, toggling the caller's
// bookmark.
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	var req engagementRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.PostID == 0 {
		return fail(c, models.NewValidationError("user_id and post_id are required"))
	}

	message, err := s.engagementService.ToggleBookmark(c.UserContext(), req.UserID, req.PostID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}
