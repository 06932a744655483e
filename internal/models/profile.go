package models

import (
	"time"
)

// Profile holds the public-facing details of a user. Exactly one profile
// exists per user; it is created in the same transaction as the user row.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Image     string    `gorm:"default:default/profile.jpg" json:"image"`
	FullName  string    `json:"full_name"`
	Bio       string    `gorm:"size:400" json:"bio"`
	About     string    `gorm:"size:500" json:"about"`
	Author    bool      `gorm:"default:false" json:"author"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	WhatsApp  string    `json:"whatsapp"`
	Facebook  string    `json:"facebook"`
	Instagram string    `json:"instagram"`
	LinkedIn  string    `json:"linkedin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}
