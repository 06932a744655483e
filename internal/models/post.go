package models

import (
	"time"
)

// Post publication states.
const (
	PostStatusActive    = "Active"
	PostStatusDraft     = "Draft"
	PostStatusPublished = "Published"
)

// ValidPostStatus reports whether s is one of the declared post states.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusActive, PostStatusDraft, PostStatusPublished:
		return true
	}
	return false
}

// Post is a blog entry. Slug is unique even across duplicate titles: the
// generator appends a short random suffix and retries on collision.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	ProfileID   *uint     `gorm:"index" json:"profile_id,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	Tags        string    `json:"tags"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"default:default/post.jpg" json:"image"`
	Status      string    `gorm:"default:Active" json:"status"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	View        int       `gorm:"default:0" json:"view"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`

	User     User      `gorm:"foreignKey:UserID" json:"user"`
	Profile  *Profile  `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// PostLike records one user's like on one post. The composite unique index
// makes concurrent toggles converge instead of double-inserting.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"post"`
}
