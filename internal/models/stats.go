package models

// AuthorStats aggregates engagement across all of an author's posts.
type AuthorStats struct {
	Views     int64 `json:"views"`
	Likes     int64 `json:"likes"`
	Posts     int64 `json:"posts"`
	Bookmarks int64 `json:"bookmarks"`
}
