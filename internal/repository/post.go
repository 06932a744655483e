package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlugActive(ctx context.Context, slug string) (*models.Post, error)
	GetByUserAndID(ctx context.Context, userID, postID uint) (*models.Post, error)
	ListActive(ctx context.Context) ([]*models.Post, error)
	ListActiveByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Post, error)
	IncrementView(ctx context.Context, id uint) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	AddLike(ctx context.Context, userID, postID uint) (bool, error)
	RemoveLike(ctx context.Context, userID, postID uint) error
	AuthorStats(ctx context.Context, userID uint) (*models.AuthorStats, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds the likes_count subquery so reads resolve the like
// relation in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) as likes_count")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlugActive(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Profile").
		Preload("Category").
		Where("slug = ? AND status = ?", slug, models.PostStatusActive).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByUserAndID looks a post up by (author, id). A mismatched author is
// indistinguishable from a missing post: both are a record-not-found.
func (r *postRepository) GetByUserAndID(ctx context.Context, userID, postID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Where("user_id = ? AND id = ?", userID, postID).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListActive(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("status = ?", models.PostStatusActive).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("category_id = ? AND status = ?", categoryID, models.PostStatusActive).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// IncrementView bumps the view counter in a single UPDATE so concurrent
// detail reads cannot lose increments.
func (r *postRepository) IncrementView(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view", gorm.Expr("view + ?", 1)).Error
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

// Delete removes the post and cascades to its comments, bookmarks, likes
// and notifications in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePostDependents(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

// deletePostDependents removes every row referencing the given posts.
func deletePostDependents(tx *gorm.DB, postIDs []uint) error {
	for _, del := range []error{
		tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error,
		tx.Where("post_id IN ?", postIDs).Delete(&models.Bookmark{}).Error,
		tx.Where("post_id IN ?", postIDs).Delete(&models.PostLike{}).Error,
		tx.Where("post_id IN ?", postIDs).Delete(&models.Notification{}).Error,
	} {
		if del != nil {
			return del
		}
	}
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike inserts the like row; a concurrent duplicate insert is swallowed
// by the unique constraint via ON CONFLICT DO NOTHING. The returned bool
// reports whether this call actually inserted the row, so callers can tell
// a real transition apart from losing the race.
func (r *postRepository) AddLike(ctx context.Context, userID, postID uint) (bool, error) {
	like := models.PostLike{UserID: userID, PostID: postID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if result.Error != nil {
		return false, result.Error
	}
	inserted := result.RowsAffected > 0
	if inserted {
		cache.InvalidatePostsList(ctx)
	}
	return inserted, nil
}

func (r *postRepository) RemoveLike(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.PostLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePostsList(ctx)
	}
	return nil
}

// AuthorStats aggregates views, likes, posts and bookmarks across the
// author's posts. An author with no posts yields zeros, not an error.
func (r *postRepository) AuthorStats(ctx context.Context, userID uint) (*models.AuthorStats, error) {
	var stats models.AuthorStats

	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(view), 0)").
		Scan(&stats.Views).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&stats.Posts).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("posts.user_id = ?", userID).
		Count(&stats.Likes).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Joins("JOIN posts ON posts.id = bookmarks.post_id").
		Where("posts.user_id = ?", userID).
		Count(&stats.Bookmarks).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
