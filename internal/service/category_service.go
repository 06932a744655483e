package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slug"

	"gorm.io/gorm"
)

// CategoryService handles category listing, creation and lookup.
type CategoryService struct {
	categories repository.CategoryRepository
	posts      repository.PostRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories repository.CategoryRepository, posts repository.PostRepository) *CategoryService {
	return &CategoryService{categories: categories, posts: posts}
}

// List returns every category with its computed post count.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories.List(ctx)
}

// Create makes a category with a slug derived from the title. Category
// slugs carry no random suffix: "My Category" is always "my-category".
func (s *CategoryService) Create(ctx context.Context, title, image string) (*models.Category, error) {
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	category := &models.Category{
		Title: title,
		Image: image,
		Slug:  slug.Make(title),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("category already exists")
		}
		return nil, err
	}
	return category, nil
}

// PostsBySlug returns the active posts in a category, newest first.
func (s *CategoryService) PostsBySlug(ctx context.Context, categorySlug string) ([]*models.Post, error) {
	category, err := s.categories.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("category", categorySlug)
		}
		return nil, err
	}
	return s.posts.ListActiveByCategory(ctx, category.ID)
}
