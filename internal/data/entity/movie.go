package entity

import (
	"time"
)

// Movie is the sole persisted entity. Rows serialize straight to the API
// wire format, so json tags mirror the column names.
type Movie struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Genre       string    `db:"genre" json:"genre"`
	Description string    `db:"description" json:"description"`
	PosterURL   string    `db:"poster_url" json:"poster_url"`
	Rating      float64   `db:"rating" json:"rating"`
	Certificate string    `db:"certificate" json:"certificate"`
	Language    string    `db:"language" json:"language"`
	Votes       int       `db:"votes" json:"votes"`
	Likes       int       `db:"likes" json:"likes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
