package store

import (
	"context"
	"database/sql"

	"folio-go/internal/model"
	"folio-go/internal/util"
)

const blogPostColumns = "id, title, excerpt, content, category, image, published_date, slug"

func scanBlogPost(scanner interface{ Scan(dest ...any) error }) (model.BlogPost, error) {
	var p model.BlogPost
	err := scanner.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category,
		&p.Image, &p.PublishedDate, &p.Slug)
	return p, err
}

// ListBlogPosts returns all posts, newest first.
func (q *Queries) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+blogPostColumns+" FROM blog_posts ORDER BY published_date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	posts := make([]model.BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetBlogPostByID fetches a single post by primary key.
func (q *Queries) GetBlogPostByID(ctx context.Context, id int64) (model.BlogPost, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+blogPostColumns+" FROM blog_posts WHERE id = ?", id)
	return scanBlogPost(row)
}

// GetBlogPostBySlug fetches a single post by its unique slug.
func (q *Queries) GetBlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+blogPostColumns+" FROM blog_posts WHERE slug = ?", slug)
	return scanBlogPost(row)
}

// CreateBlogPostParams holds the fields for CreateBlogPost.
type CreateBlogPostParams struct {
	Title         string
	Excerpt       string
	Content       string
	Category      string
	Image         string
	PublishedDate sql.NullTime
	Slug          string
}

// CreateBlogPost inserts a post and returns it with its assigned id.
// A zero PublishedDate defaults to the current time; an empty Slug is
// derived from the title.
func (q *Queries) CreateBlogPost(ctx context.Context, arg CreateBlogPostParams) (model.BlogPost, error) {
	published := arg.PublishedDate.Time
	if !arg.PublishedDate.Valid {
		published = nowUTC()
	}
	if arg.Slug == "" {
		arg.Slug = util.Slugify(arg.Title)
	}
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO blog_posts (title, excerpt, content, category, image, published_date, slug) VALUES (?, ?, ?, ?, ?, ?, ?)",
		arg.Title, arg.Excerpt, arg.Content, arg.Category, arg.Image, published, arg.Slug)
	if err != nil {
		return model.BlogPost{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.BlogPost{}, err
	}
	return model.BlogPost{
		ID:            id,
		Title:         arg.Title,
		Excerpt:       arg.Excerpt,
		Content:       arg.Content,
		Category:      arg.Category,
		Image:         arg.Image,
		PublishedDate: published,
		Slug:          arg.Slug,
	}, nil
}
