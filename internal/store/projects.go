package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"folio-go/internal/model"
)

const projectColumns = "id, title, description, category, image, technologies, link, featured"

// Technologies are stored as a JSON array in a single text column.
func scanProject(scanner interface{ Scan(dest ...any) error }) (model.Project, error) {
	var p model.Project
	var technologies string
	if err := scanner.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Image,
		&technologies, &p.Link, &p.Featured); err != nil {
		return model.Project{}, err
	}
	if err := json.Unmarshal([]byte(technologies), &p.Technologies); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func collectProjects(rows *sql.Rows) ([]model.Project, error) {
	defer func() { _ = rows.Close() }()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListProjects returns all projects in insertion order.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

// ListProjectsByCategory filters projects by exact category match.
// The pseudo-category "all" returns every project.
func (q *Queries) ListProjectsByCategory(ctx context.Context, category string) ([]model.Project, error) {
	if category == model.CategoryAll {
		return q.ListProjects(ctx)
	}
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE category = ? ORDER BY id", category)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

// GetProjectByID fetches a single project.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	return scanProject(row)
}

// CreateProjectParams holds the fields for CreateProject.
type CreateProjectParams struct {
	Title        string
	Description  string
	Category     string
	Image        string
	Technologies []string
	Link         string
	Featured     bool
}

// CreateProject inserts a project and returns it with its assigned id.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (model.Project, error) {
	technologies, err := json.Marshal(arg.Technologies)
	if err != nil {
		return model.Project{}, err
	}
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO projects (title, description, category, image, technologies, link, featured) VALUES (?, ?, ?, ?, ?, ?, ?)",
		arg.Title, arg.Description, arg.Category, arg.Image, string(technologies), arg.Link, arg.Featured)
	if err != nil {
		return model.Project{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Project{}, err
	}
	return model.Project{
		ID:           id,
		Title:        arg.Title,
		Description:  arg.Description,
		Category:     arg.Category,
		Image:        arg.Image,
		Technologies: arg.Technologies,
		Link:         arg.Link,
		Featured:     arg.Featured,
	}, nil
}
