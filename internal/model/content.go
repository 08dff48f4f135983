package model

import "time"

// Content kind constants. The kind decides which editing affordance the
// admin editor presents; the value itself is always stored as a string.
const (
	ContentKindText     = "text"
	ContentKindRichText = "richtext"
	ContentKindImage    = "image"
	ContentKindJSON     = "json"
)

// ValidContentKinds returns all valid content kinds.
func ValidContentKinds() []string {
	return []string{
		ContentKindText,
		ContentKindRichText,
		ContentKindImage,
		ContentKindJSON,
	}
}

// IsValidContentKind checks if a content kind is valid.
func IsValidContentKind(kind string) bool {
	for _, k := range ValidContentKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// ContentRecord is a single editable (section, key) -> value pair driving a
// piece of on-page text. Section and key identify the page area and field;
// only the value (and its timestamp) changes after creation.
type ContentRecord struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Kind      string    `json:"type"`
	UpdatedAt time.Time `json:"updatedAt"`
}
