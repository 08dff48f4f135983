// Package session configures the server-side session manager.
package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// New creates a session manager backed by scs's in-memory store. Sessions
// therefore die with the process, matching the durability model of the rest
// of the application state.
func New(isDev bool) *scs.SessionManager {
	sm := scs.New()

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only
	if !isDev {
		sm.Cookie.Name = "__Host-session"
		sm.Cookie.Path = "/"
	}

	return sm
}
