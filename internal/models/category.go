package models

// Category groups posts under a unique, URL-addressable slug.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Image string `gorm:"default:default/category.jpg" json:"image"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	// PostCount is not persisted; computed at query time
	PostCount int `gorm:"->" json:"post_count"`
}
