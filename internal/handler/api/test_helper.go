package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"folio-go/internal/cache"
	"folio-go/internal/middleware"
	"folio-go/internal/store"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "secret123"
)

// testServer wires the full API stack: seeded in-memory database,
// memory cache, session manager, and the chi router with auth
// middleware.
type testServer struct {
	*httptest.Server
	db      *sql.DB
	queries *store.Queries
	handler *Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := store.NewDB(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	if err := store.Seed(context.Background(), db, store.AdminCredentials{
		Username: testAdminUsername,
		Password: testAdminPassword,
	}); err != nil {
		t.Fatalf("seeding database: %v", err)
	}

	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	sm := scs.New()
	protection := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit: 1000, // tests hit login freely
		IPBurst:     1000,
	})
	h := NewHandler(db, c, sm, protection, time.Minute)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Route("/api", func(r chi.Router) {
		h.Routes(r, middleware.RequireAdmin(sm, db), protection.Middleware())
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return &testServer{Server: ts, db: db, queries: store.New(db), handler: h}
}

// doJSON issues a request with an optional JSON body and session cookie.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// login signs in as the seeded admin and returns the session cookie.
func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	resp := ts.doJSON(t, http.MethodPost, "/api/admin/login", LoginRequest{
		Username: testAdminUsername,
		Password: testAdminPassword,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

// decodeData unmarshals the "data" member of the response envelope.
func decodeData(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}

// decodeError unmarshals the error envelope.
func decodeError(t *testing.T, resp *http.Response) ErrorDetail {
	t.Helper()

	var envelope ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	return envelope.Error
}
