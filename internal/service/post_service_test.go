package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePostGeneratesSuffixedSlug(t *testing.T) {
	posts := noopPostRepo()
	var created *models.Post
	posts.createFn = func(_ context.Context, post *models.Post) error {
		created = post
		return nil
	}
	svc := NewPostService(posts, noopUserRepo())

	post, err := svc.Create(context.Background(), CreatePostInput{
		UserID: 1,
		Title:  "My Category",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, strings.HasPrefix(post.Slug, "my-category-"))
	assert.Len(t, post.Slug, len("my-category-")+2)
	assert.Equal(t, models.PostStatusActive, post.Status)
}

func TestCreatePostRetriesOnSlugCollision(t *testing.T) {
	posts := noopPostRepo()
	attempts := 0
	slugs := map[string]bool{}
	posts.createFn = func(_ context.Context, post *models.Post) error {
		attempts++
		slugs[post.Slug] = true
		if attempts < 3 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	}
	svc := NewPostService(posts, noopUserRepo())

	_, err := svc.Create(context.Background(), CreatePostInput{UserID: 1, Title: "Collides"})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestCreatePostGivesUpAfterRetries(t *testing.T) {
	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, _ *models.Post) error {
		return gorm.ErrDuplicatedKey
	}
	svc := NewPostService(posts, noopUserRepo())

	_, err := svc.Create(context.Background(), CreatePostInput{UserID: 1, Title: "Hopeless"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreatePostInvalidStatus(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.Create(context.Background(), CreatePostInput{
		UserID: 1, Title: "t", Status: "Archived",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreatePostAttachesProfile(t *testing.T) {
	users := noopUserRepo()
	users.getProfileByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 33, UserID: userID}, nil
	}
	svc := NewPostService(noopPostRepo(), users)

	post, err := svc.Create(context.Background(), CreatePostInput{UserID: 1, Title: "t"})
	require.NoError(t, err)
	require.NotNil(t, post.ProfileID)
	assert.Equal(t, uint(33), *post.ProfileID)
}

func TestGetBySlugCountsView(t *testing.T) {
	posts := noopPostRepo()
	posts.getBySlugActiveFn = func(_ context.Context, slug string) (*models.Post, error) {
		return &models.Post{ID: 5, Slug: slug, View: 7}, nil
	}
	incremented := uint(0)
	posts.incrementViewFn = func(_ context.Context, id uint) error {
		incremented = id
		return nil
	}
	svc := NewPostService(posts, noopUserRepo())

	post, err := svc.GetBySlug(context.Background(), "some-post-aa")
	require.NoError(t, err)
	assert.Equal(t, uint(5), incremented)
	assert.Equal(t, 8, post.View)
}

func TestGetBySlugNotFound(t *testing.T) {
	posts := noopPostRepo()
	posts.getBySlugActiveFn = func(_ context.Context, _ string) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPostService(posts, noopUserRepo())

	_, err := svc.GetBySlug(context.Background(), "missing")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestEditPostPreservesImageOnUndefined(t *testing.T) {
	posts := noopPostRepo()
	posts.getByUserAndIDFn = func(_ context.Context, _, postID uint) (*models.Post, error) {
		return &models.Post{ID: postID, UserID: 1, Image: "stored.jpg", Slug: "kept-aa"}, nil
	}
	svc := NewPostService(posts, noopUserRepo())
	ctx := context.Background()

	post, err := svc.Edit(ctx, 1, 2, EditPostInput{Title: "t", Image: "undefined"})
	require.NoError(t, err)
	assert.Equal(t, "stored.jpg", post.Image)
	assert.Equal(t, "kept-aa", post.Slug)

	post, err = svc.Edit(ctx, 1, 2, EditPostInput{Title: "t", Image: "new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", post.Image)
}

func TestEditPostOwnerMismatch(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.Edit(context.Background(), 99, 2, EditPostInput{Title: "t"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestDeletePostOwnerMismatch(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	err := svc.Delete(context.Background(), 99, 2)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
