package domain

import "time"

// Post is a piece of content published by a user. AuthorID should
// reference an existing user row; the write path does not verify it.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	ImageURL  *string
	CreatedAt time.Time
}
