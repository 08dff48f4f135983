// Package model defines domain models and types used throughout the
// application: users, content records, projects, blog posts, contacts,
// and event log entries.
package model

import (
	"database/sql"
	"time"
)

// User represents an account that can sign in to the admin editor.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	IsAdmin      bool         `json:"is_admin"`
	CreatedAt    time.Time    `json:"created_at"`
	LastLoginAt  sql.NullTime `json:"last_login_at,omitempty"`
}

// SessionUser is the minimal projection of a user that check-auth
// responses carry. It never includes credential material.
type SessionUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
