package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats handles GET /api/author/dashboard/stats/:userId
func (s *Server) DashboardStats(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	stats, err := s.dashboardService.Stats(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// DashboardPosts handles GET /api/author/dashboard/list-post/:userId
func (s *Server) DashboardPosts(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	posts, err := s.dashboardService.Posts(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// DashboardComments handles GET /api/author/dashboard/comment-list/:userId
func (s *Server) DashboardComments(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	comments, err := s.dashboardService.Comments(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comments)
}

// DashboardNotifications handles GET /api/author/dashboard/notification-list/:userId
func (s *Server) DashboardNotifications(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	notifications, err := s.dashboardService.Notifications(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notifications)
}

// CommentReply handles POST /api/author/dashboard/comment-reply
func (s *Server) CommentReply(c *fiber.Ctx) error {
	var req struct {
		CommentID uint   `json:"comment_id"`
		Reply     string `json:"reply"`
	}
	if err := c.BodyParser(&req); err != nil || req.CommentID == 0 {
		return fail(c, models.NewValidationError("comment_id and reply are required"))
	}

	reply, err := s.engagementService.ReplyToComment(c.UserContext(), req.CommentID, req.Reply)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// NotificationMarkAsRead handles POST /api/author/dashboard/notification-mark-as-read
func (s *Server) NotificationMarkAsRead(c *fiber.Ctx) error {
	var req struct {
		NotificationID uint `json:"notification_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.NotificationID == 0 {
		return fail(c, models.NewValidationError("notification_id is required"))
	}

	if err := s.dashboardService.MarkNotificationSeen(c.UserContext(), req.NotificationID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}

// CreatePost handles POST /api/author/dashboard/create-post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return fail(c, models.NewValidationError("user_id and title are required"))
	}

	post, err := s.postService.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// EditPost handles PUT /api/author/dashboard/edit-post/:userId/:postId
func (s *Server) EditPost(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return fail(c, err)
	}

	var req service.EditPostInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Edit(c.UserContext(), userID, postID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/author/dashboard/edit-post/:userId/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, err)
	}
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return fail(c, err)
	}

	if err := s.postService.Delete(c.UserContext(), userID, postID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
