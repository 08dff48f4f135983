package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"folio-go/internal/auth"
	"folio-go/internal/middleware"
	"folio-go/internal/model"
)

// Credential length bounds, enforced before hitting the database.
const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

// LoginRequest is the body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CheckAuthResponse is the body for GET /api/admin/check-auth.
type CheckAuthResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *model.SessionUser `json:"user,omitempty"`
}

// Login handles POST /api/admin/login. Unknown usernames and wrong
// passwords produce the same response so the endpoint cannot be used to
// enumerate accounts.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	fieldErrors := make(map[string]string)
	if len(req.Username) < MinUsernameLen {
		fieldErrors["username"] = "Username must be at least 3 characters"
	}
	if len(req.Password) < MinPasswordLen {
		fieldErrors["password"] = "Password must be at least 6 characters"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	if locked, remaining := h.protection.IsAccountLocked(req.Username); locked {
		slog.Warn("login attempt on locked account",
			"username", req.Username, "remaining", remaining.Round(time.Second))
		WriteError(w, http.StatusTooManyRequests, "account_locked",
			"Too many failed attempts, try again later", nil)
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), req.Username)
	valid := false
	if err == nil {
		ok, cpErr := auth.CheckPassword(req.Password, user.PasswordHash)
		valid = ok && cpErr == nil
	}
	// Non-admin accounts are rejected with the same response as bad
	// credentials.
	if err != nil || !valid || !user.IsAdmin {
		if locked, _ := h.protection.RecordFailedAttempt(req.Username); locked {
			_ = h.events.LogAuthEvent(r.Context(), model.EventLevelWarning,
				"account locked after repeated failures", nil,
				map[string]any{"username": req.Username})
		}
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	h.protection.RecordSuccessfulLogin(req.Username)

	// Rotate the session token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		WriteInternalError(w, "Failed to establish session")
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now().UTC()); err != nil {
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}
	_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "admin logged in",
		&user.ID, map[string]any{"username": user.Username})

	WriteSuccess(w, model.SessionUser{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil)
}

// Logout handles POST /api/admin/logout. Destroying a session that does
// not exist still succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessions.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "Failed to end session")
		return
	}
	if userID != 0 {
		_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "admin logged out",
			&userID, nil)
	}

	WriteSuccess(w, map[string]string{"message": "Logged out"}, nil)
}

// CheckAuth handles GET /api/admin/check-auth. Always 200; the body says
// whether the caller holds a valid admin session.
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	userID := h.sessions.GetInt64(r.Context(), middleware.SessionKeyUserID)
	if userID == 0 {
		WriteSuccess(w, CheckAuthResponse{Authenticated: false}, nil)
		return
	}

	user, err := h.queries.GetUserByID(r.Context(), userID)
	if err != nil {
		// Stale session, clean it up.
		_ = h.sessions.Destroy(r.Context())
		WriteSuccess(w, CheckAuthResponse{Authenticated: false}, nil)
		return
	}

	WriteSuccess(w, CheckAuthResponse{
		Authenticated: true,
		User: &model.SessionUser{
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	}, nil)
}
