package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fenwick/jot/internal/models"
)

// CreateNoteRequest is the request body for creating a note.
// Content is a pointer so a missing key can be told apart from an empty
// string: the key is required, the empty body is allowed.
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

// Validate checks the shape of a create payload.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.NotNil),
		validation.Field(&r.Tags, validation.Each(validation.Required, validation.Length(1, 100))),
	)
}

// UpdateNoteRequest is the request body for a partial update. Every field
// is optional; absent fields leave the note unchanged. Tags, when present,
// replaces the whole tag list.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// Validate checks the shape of an update payload.
func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

// Patch converts the request into a domain patch.
func (r UpdateNoteRequest) Patch() models.NotePatch {
	return models.NotePatch{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
	}
}

// NoteListResponse wraps paginated note listings.
type NoteListResponse struct {
	Items    []models.Note `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// SeedResponse is returned by POST /utils/seed.
type SeedResponse struct {
	Created int `json:"created"`
}

// StatusResponse is a generic status confirmation body.
type StatusResponse struct {
	Status string `json:"status"`
}
