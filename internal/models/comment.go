package models

import (
	"time"
)

// Comment belongs to a post. A reply is itself a Comment row whose ReplyID
// points at the parent comment; depth is not limited by the schema.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Comment   string    `gorm:"type:text" json:"comment"`
	ReplyID   *uint     `gorm:"index" json:"reply_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Post    Post      `gorm:"foreignKey:PostID" json:"post"`
	User    User      `gorm:"foreignKey:UserID" json:"user"`
	Reply   *Comment  `gorm:"foreignKey:ReplyID" json:"reply,omitempty"`
	Replies []Comment `gorm:"foreignKey:ReplyID" json:"replies,omitempty"`
}
