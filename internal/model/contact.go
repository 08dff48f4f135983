package model

import "time"

// Contact form validation bounds.
const (
	ContactNameMinLen    = 2
	ContactNameMaxLen    = 100
	ContactSubjectMinLen = 5
	ContactSubjectMaxLen = 255
	ContactMessageMinLen = 10
)

// Contact is a submitted contact-form message. Contacts are append-only;
// they are written by the public form and read back only by admins.
type Contact struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
