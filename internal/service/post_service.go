package service

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slug"

	"gorm.io/gorm"
)

// slugAttempts bounds the retry loop when the 2-char suffix collides.
const slugAttempts = 3

// PostService handles post authoring and the public read surface.
type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a new post service
func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// CreatePostInput carries the authoring payload.
type CreatePostInput struct {
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	CategoryID  *uint  `json:"category"`
	Status      string `json:"post_status"`
}

// Create stores a new post. The slug is derived from the title plus a short
// random suffix; a suffix collision retries with a fresh one.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("title is required")
	}
	status := in.Status
	if status == "" {
		status = models.PostStatusActive
	}
	if !models.ValidPostStatus(status) {
		return nil, models.NewValidationError("invalid post status")
	}

	post := &models.Post{
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Tags:        in.Tags,
		Description: in.Description,
		Image:       in.Image,
		Status:      status,
	}
	if profile, err := s.users.GetProfileByUserID(ctx, in.UserID); err == nil {
		post.ProfileID = &profile.ID
	}

	var err error
	for i := 0; i < slugAttempts; i++ {
		post.Slug = slug.WithSuffix(in.Title)
		err = s.posts.Create(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, err
}

// GetBySlug returns the active post behind slug and counts the view. The
// returned view reflects this read.
func (s *PostService) GetBySlug(ctx context.Context, postSlug string) (*models.Post, error) {
	post, err := s.posts.GetBySlugActive(ctx, postSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", postSlug)
		}
		return nil, err
	}
	if err := s.posts.IncrementView(ctx, post.ID); err != nil {
		return nil, err
	}
	post.View++
	return post, nil
}

// ListActive returns all active posts newest first, serving the list from
// Redis when a fresh copy exists.
func (s *PostService) ListActive(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostsListKey(), &posts, cache.PostsListTTL, func() error {
		var err error
		posts, err = s.posts.ListActive(ctx)
		return err
	})
	return posts, err
}

// EditPostInput carries the editable post fields.
type EditPostInput struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	CategoryID  *uint  `json:"category"`
	Status      string `json:"post_status"`
}

// Edit replaces the editable fields of the post owned by userID. The slug is
// kept so published links never break. An image value of the literal string
// "undefined" keeps the stored image.
func (s *PostService) Edit(ctx context.Context, userID, postID uint, in EditPostInput) (*models.Post, error) {
	post, err := s.posts.GetByUserAndID(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", postID)
		}
		return nil, err
	}

	if in.Status != "" && !models.ValidPostStatus(in.Status) {
		return nil, models.NewValidationError("invalid post status")
	}

	post.Title = in.Title
	post.Description = in.Description
	post.Tags = in.Tags
	post.CategoryID = in.CategoryID
	if in.Status != "" {
		post.Status = in.Status
	}
	if in.Image != "undefined" {
		post.Image = in.Image
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post owned by userID with its dependents.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByUserAndID(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("post", postID)
		}
		return err
	}
	return s.posts.Delete(ctx, post.ID)
}
