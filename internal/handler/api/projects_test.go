package api

import (
	"fmt"
	"net/http"
	"testing"

	"folio-go/internal/model"
)

func TestListProjects(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var projects []model.Project
	decodeData(t, resp, &projects)
	if len(projects) == 0 {
		t.Fatal("no seeded projects returned")
	}
	for _, p := range projects {
		if p.Title == "" || p.Category == "" {
			t.Errorf("malformed project: %+v", p)
		}
		if p.Technologies == nil {
			t.Errorf("project %d has null technologies", p.ID)
		}
	}
}

func TestListProjectsByCategory(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects/category/automation", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var filtered []model.Project
	decodeData(t, resp, &filtered)
	for _, p := range filtered {
		if p.Category != "automation" {
			t.Errorf("category %q leaked into automation listing", p.Category)
		}
	}

	// "all" matches everything.
	resp = ts.doJSON(t, http.MethodGet, "/api/projects/category/all", nil, nil)
	var all []model.Project
	decodeData(t, resp, &all)

	resp = ts.doJSON(t, http.MethodGet, "/api/projects", nil, nil)
	var unfiltered []model.Project
	decodeData(t, resp, &unfiltered)

	if len(all) != len(unfiltered) {
		t.Errorf("category all returned %d projects, listing has %d", len(all), len(unfiltered))
	}
}

func TestListProjectsByCategory_Unknown(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects/category/no-such-category", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var projects []model.Project
	decodeData(t, resp, &projects)
	if len(projects) != 0 {
		t.Errorf("got %d projects for unknown category", len(projects))
	}
}

func TestGetProject(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects", nil, nil)
	var projects []model.Project
	decodeData(t, resp, &projects)

	resp = ts.doJSON(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", projects[0].ID), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var project model.Project
	decodeData(t, resp, &project)
	if project.ID != projects[0].ID || project.Title != projects[0].Title {
		t.Errorf("project = %+v, want %+v", project, projects[0])
	}
}

func TestGetProject_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects/99999", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetProject_InvalidID(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.doJSON(t, http.MethodGet, "/api/projects/not-a-number", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
