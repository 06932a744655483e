package models

import (
	"time"
)

// Notification types. Reply is declared for parity with the engagement
// actions but nothing emits it yet.
const (
	NotificationLike     = "Like"
	NotificationComment  = "Comment"
	NotificationReply    = "Reply"
	NotificationBookmark = "Bookmark"
)

// Notification is created as a side effect of like/comment/bookmark actions
// and addressed to the author of the affected post.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	Type      string    `gorm:"not null" json:"type"`
	Seen      bool      `gorm:"default:false" json:"seen"`
	CreatedAt time.Time `json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"user"`
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
