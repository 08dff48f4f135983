package model

// CategoryAll is the pseudo-category that matches every project.
const CategoryAll = "all"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Featured     bool     `json:"featured"`
}
