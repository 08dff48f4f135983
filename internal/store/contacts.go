package store

import (
	"context"
	"time"

	"folio-go/internal/model"
)

const contactColumns = "id, reference, name, email, subject, message, created_at"

// nowUTC is the single clock used for store timestamps.
func nowUTC() time.Time {
	return time.Now().UTC()
}

// CreateContactParams holds the fields for CreateContact.
type CreateContactParams struct {
	Reference string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// CreateContact appends a contact-form submission.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (model.Contact, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO contacts (reference, name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		arg.Reference, arg.Name, arg.Email, arg.Subject, arg.Message, arg.CreatedAt)
	if err != nil {
		return model.Contact{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Contact{}, err
	}
	return model.Contact{
		ID:        id,
		Reference: arg.Reference,
		Name:      arg.Name,
		Email:     arg.Email,
		Subject:   arg.Subject,
		Message:   arg.Message,
		CreatedAt: arg.CreatedAt,
	}, nil
}

// ListContacts returns all submissions, newest first. Only the admin
// endpoint reads these back.
func (q *Queries) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Reference, &c.Name, &c.Email, &c.Subject,
			&c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CountContacts returns the number of contact rows.
func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&n)
	return n, err
}
