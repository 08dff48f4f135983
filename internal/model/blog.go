package model

import "time"

// BlogPost is a published article. Content is stored as markdown; the API
// layer renders and sanitizes it before it leaves the process.
type BlogPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	PublishedDate time.Time `json:"publishedDate"`
	Slug          string    `json:"slug"`
}
