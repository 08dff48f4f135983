package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"folio-go/internal/model"
	"folio-go/internal/store"
)

// ContactRequest is the body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a submission with its reference code.
type ContactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

func validateContact(req ContactRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if len(req.Name) < model.ContactNameMinLen || len(req.Name) > model.ContactNameMaxLen {
		fieldErrors["name"] = fmt.Sprintf("Name must be between %d and %d characters",
			model.ContactNameMinLen, model.ContactNameMaxLen)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fieldErrors["email"] = "A valid email address is required"
	}
	if len(req.Subject) < model.ContactSubjectMinLen || len(req.Subject) > model.ContactSubjectMaxLen {
		fieldErrors["subject"] = fmt.Sprintf("Subject must be between %d and %d characters",
			model.ContactSubjectMinLen, model.ContactSubjectMaxLen)
	}
	if len(req.Message) < model.ContactMessageMinLen {
		fieldErrors["message"] = fmt.Sprintf("Message must be at least %d characters",
			model.ContactMessageMinLen)
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// SubmitContact handles POST /api/contact. Each accepted submission gets
// a UUID reference the sender can quote in follow-ups.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	if fieldErrors := validateContact(req); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	contact, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to save message")
		return
	}

	_ = h.events.LogContactEvent(r.Context(), model.EventLevelInfo, "contact message received",
		map[string]any{"reference": contact.Reference, "subject": contact.Subject})

	WriteCreated(w, ContactResponse{
		Reference: contact.Reference,
		Message:   "Thanks for reaching out, I will get back to you soon",
	})
}
