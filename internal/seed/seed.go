// Package seed creates demo data for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/slug"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryTitles = []string{
	"Technology", "Travel", "Food", "Lifestyle", "Programming",
	"Science", "Books", "Music", "Fitness", "Finance",
}

// Seed populates the database with demo users, categories, posts and
// engagement. All seeded users share the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("seeding %d users and %d posts", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("created %d categories", len(categories))

	posts, err := createPosts(db, r, users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createEngagement(db, r, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Notification{},
		&models.Bookmark{},
		&models.PostLike{},
		&models.Comment{},
		&models.Post{},
		&models.Category{},
		&models.Profile{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), i)
		user := &models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			FullName: first + " " + last,
			Password: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		profile := &models.Profile{
			UserID:   user.ID,
			FullName: user.FullName,
			Bio:      gofakeit.Sentence(8),
			About:    gofakeit.Paragraph(1, 2, 8, " "),
			Author:   i%3 == 0,
			Country:  gofakeit.Country(),
			City:     gofakeit.City(),
		}
		if err := db.Create(profile).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createCategories(db *gorm.DB) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(categoryTitles))
	for _, title := range categoryTitles {
		category := &models.Category{
			Title: title,
			Slug:  slug.Make(title),
			Image: fmt.Sprintf("https://picsum.photos/seed/%s/600/400", slug.Make(title)),
		}
		if err := db.Create(category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func createPosts(db *gorm.DB, r *rand.Rand, users []*models.User, categories []*models.Category, n int) ([]*models.Post, error) {
	statuses := []string{
		models.PostStatusActive,
		models.PostStatusActive,
		models.PostStatusActive,
		models.PostStatusDraft,
		models.PostStatusPublished,
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		user := users[r.Intn(len(users))]
		category := categories[r.Intn(len(categories))]
		title := gofakeit.Sentence(5)

		post := &models.Post{
			UserID:      user.ID,
			CategoryID:  &category.ID,
			Title:       title,
			Tags:        strings.Join([]string{gofakeit.Word(), gofakeit.Word(), gofakeit.Word()}, ","),
			Description: gofakeit.Paragraph(2, 4, 10, "\n"),
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			Status:      statuses[r.Intn(len(statuses))],
			Slug:        slug.WithSuffix(title),
			View:        r.Intn(500),
			CreatedAt:   time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if r.Intn(4) != 0 {
				continue
			}
			like := &models.PostLike{UserID: user.ID, PostID: post.ID}
			if err := db.Create(like).Error; err != nil {
				return err
			}
			notification := &models.Notification{
				UserID: post.UserID,
				PostID: &post.ID,
				Type:   models.NotificationLike,
				Seen:   r.Intn(2) == 0,
			}
			if err := db.Create(notification).Error; err != nil {
				return err
			}
		}

		commentCount := r.Intn(5)
		for i := 0; i < commentCount; i++ {
			commenter := users[r.Intn(len(users))]
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  commenter.ID,
				Comment: gofakeit.Sentence(12),
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
			if r.Intn(3) == 0 {
				reply := &models.Comment{
					PostID:  comment.PostID,
					UserID:  comment.UserID,
					Comment: gofakeit.Sentence(8),
					ReplyID: &comment.ID,
				}
				if err := db.Create(reply).Error; err != nil {
					return err
				}
			}
		}

		if r.Intn(3) == 0 {
			reader := users[r.Intn(len(users))]
			bookmark := &models.Bookmark{UserID: reader.ID, PostID: post.ID}
			if err := db.Create(bookmark).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
