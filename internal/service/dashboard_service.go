package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// DashboardService serves the author dashboard reads.
type DashboardService struct {
	posts         repository.PostRepository
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	notifications repository.NotificationRepository,
) *DashboardService {
	return &DashboardService{
		posts:         posts,
		comments:      comments,
		notifications: notifications,
	}
}

// Stats returns the author's aggregate numbers wrapped in a single-element
// slice, which is the shape the dashboard consumes.
func (s *DashboardService) Stats(ctx context.Context, userID uint) ([]*models.AuthorStats, error) {
	stats, err := s.posts.AuthorStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return []*models.AuthorStats{stats}, nil
}

// Posts returns the author's posts in every status, newest first.
func (s *DashboardService) Posts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

// Comments returns the comments left on the author's posts, newest first.
func (s *DashboardService) Comments(ctx context.Context, userID uint) ([]*models.Comment, error) {
	return s.comments.ListByPostAuthor(ctx, userID)
}

// Notifications returns the author's unseen notifications, newest first.
func (s *DashboardService) Notifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notifications.ListUnseenByUser(ctx, userID)
}

// MarkNotificationSeen flags the notification as seen. Marking twice is a
// no-op; an unknown id is a not-found.
func (s *DashboardService) MarkNotificationSeen(ctx context.Context, id uint) error {
	if _, err := s.notifications.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("notification", id)
		}
		return err
	}
	return s.notifications.MarkSeen(ctx, id)
}
