package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// Toggle reply messages, surfaced verbatim in the API responses.
const (
	MessageLiked      = "Liked"
	MessageUnliked    = "Unliked"
	MessageBookmarked = "Bookmarked"
	MessageRemoved    = "Removed"
)

// EngagementService handles likes, comments, replies and bookmarks, and the
// notifications each of them raises for the post author.
type EngagementService struct {
	posts         repository.PostRepository
	comments      repository.CommentRepository
	bookmarks     repository.BookmarkRepository
	notifications repository.NotificationRepository
}

// NewEngagementService creates a new engagement service
func NewEngagementService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	bookmarks repository.BookmarkRepository,
	notifications repository.NotificationRepository,
) *EngagementService {
	return &EngagementService{
		posts:         posts,
		comments:      comments,
		bookmarks:     bookmarks,
		notifications: notifications,
	}
}

func (s *EngagementService) lookupPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", postID)
		}
		return nil, err
	}
	return post, nil
}

func (s *EngagementService) notify(ctx context.Context, userID, postID uint, kind string) error {
	return s.notifications.Create(ctx, &models.Notification{
		UserID: userID,
		PostID: &postID,
		Type:   kind,
	})
}

// ToggleLike adds or removes userID's like on postID. Only the transition
// into the liked state notifies the author.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint) (string, error) {
	post, err := s.lookupPost(ctx, postID)
	if err != nil {
		return "", err
	}

	liked, err := s.posts.IsLiked(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	if liked {
		if err := s.posts.RemoveLike(ctx, userID, postID); err != nil {
			return "", err
		}
		return MessageUnliked, nil
	}

	inserted, err := s.posts.AddLike(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	// A concurrent toggle may have inserted the row first; only the call
	// that actually created it notifies the author.
	if inserted {
		if err := s.notify(ctx, post.UserID, post.ID, models.NotificationLike); err != nil {
			return "", err
		}
	}
	return MessageLiked, nil
}

// AddComment stores a top-level comment and notifies the post author.
func (s *EngagementService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("comment is required")
	}
	post, err := s.lookupPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Comment: text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, post.UserID, post.ID, models.NotificationComment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyToComment stores a reply as a new comment row pointing at its parent,
// with post and user carried over from the parent. Replies raise no
// notification.
func (s *EngagementService) ReplyToComment(ctx context.Context, commentID uint, reply string) (*models.Comment, error) {
	if reply == "" {
		return nil, models.NewValidationError("reply is required")
	}
	parent, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("comment", commentID)
		}
		return nil, err
	}

	child := &models.Comment{
		PostID:  parent.PostID,
		UserID:  parent.UserID,
		Comment: reply,
		ReplyID: &parent.ID,
	}
	if err := s.comments.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// ToggleBookmark adds or removes userID's bookmark on postID. Only creating
// the bookmark notifies the author.
func (s *EngagementService) ToggleBookmark(ctx context.Context, userID, postID uint) (string, error) {
	post, err := s.lookupPost(ctx, postID)
	if err != nil {
		return "", err
	}

	existing, err := s.bookmarks.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if err := s.bookmarks.Delete(ctx, existing.ID); err != nil {
			return "", err
		}
		return MessageRemoved, nil
	}

	bookmark := &models.Bookmark{UserID: userID, PostID: postID}
	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		// Lost a race with a concurrent bookmark of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return MessageBookmarked, nil
		}
		return "", err
	}
	if err := s.notify(ctx, post.UserID, post.ID, models.NotificationBookmark); err != nil {
		return "", err
	}
	return MessageBookmarked, nil
}
