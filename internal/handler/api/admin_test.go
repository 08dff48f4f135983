package api

import (
	"net/http"
	"testing"

	"folio-go/internal/model"
)

func TestListContacts_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/admin/contacts", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestListContacts(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	// Submit through the public form, read back as admin.
	ts.doJSON(t, http.MethodPost, "/api/contact", validContact(), nil)

	resp := ts.doJSON(t, http.MethodGet, "/api/admin/contacts", nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var contacts []model.Contact
	decodeData(t, resp, &contacts)
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if contacts[0].Email != "jordan@example.com" {
		t.Errorf("contact = %+v", contacts[0])
	}
}

func TestListEvents(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	// The login itself leaves an auth event behind.
	resp := ts.doJSON(t, http.MethodGet, "/api/admin/events", nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var events []EventResponse
	decodeData(t, resp, &events)
	if len(events) == 0 {
		t.Fatal("no events returned")
	}
	foundLogin := false
	for _, e := range events {
		if e.Category == model.EventCategoryAuth && e.Message == "admin logged in" {
			foundLogin = true
		}
	}
	if !foundLogin {
		t.Error("login event missing from feed")
	}
}

func TestListEvents_InvalidLimit(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/admin/events?limit=abc", nil, cookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/status", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var status StatusResponse
	decodeData(t, resp, &status)
	if status.Status != "ok" || status.Version == "" {
		t.Errorf("status = %+v", status)
	}
}
