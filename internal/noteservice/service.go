// Package noteservice implements the note operations behind the API and
// MCP surfaces: CRUD, paginated listing with substring filtering, and the
// seed/reset development utilities.
package noteservice

import (
	"context"
	"fmt"
	"time"

	"github.com/fenwick/jot/internal/id"
	"github.com/fenwick/jot/internal/models"
	"github.com/fenwick/jot/internal/store"
)

// Pagination defaults and bounds. Out-of-range values are clamped rather
// than rejected.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Seed bounds.
const (
	DefaultSeedCount = 5
	MaxSeedCount     = 100
)

// Service coordinates store access, id generation, and timestamps.
type Service struct {
	store store.NoteStore
	now   func() time.Time
}

// NewService creates a new note service.
func NewService(st store.NoteStore) *Service {
	return &Service{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new note with a fresh id and identical created_at /
// updated_at timestamps.
func (s *Service) Create(_ context.Context, title, content string, tags []string) (*models.Note, error) {
	noteID, err := id.Generate("note")
	if err != nil {
		return nil, fmt.Errorf("noteservice: %w", err)
	}
	now := s.now()
	n := &models.Note{
		ID:        noteID,
		Title:     title,
		Content:   content,
		Tags:      nonNilSlice(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Get returns the note with the given id.
func (s *Service) Get(_ context.Context, noteID string) (*models.Note, error) {
	return s.store.Get(noteID)
}

// Update applies a partial update. Only supplied fields change; updated_at
// is refreshed when at least one field is supplied.
func (s *Service) Update(_ context.Context, noteID string, patch models.NotePatch) (*models.Note, error) {
	return s.store.Update(noteID, patch, s.now())
}

// Delete removes the note with the given id.
func (s *Service) Delete(_ context.Context, noteID string) error {
	return s.store.Delete(noteID)
}

// List returns one page of notes filtered by the optional query (substring
// over title/content) and tag. Page and pageSize are clamped to valid
// bounds; the returned page/pageSize reflect the values actually used.
// Total counts the filtered set before pagination.
func (s *Service) List(_ context.Context, page, pageSize int, query, tag string) ([]models.Note, int, int, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	items, total, err := s.store.List(pageSize, (page-1)*pageSize, query, tag)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return items, total, page, pageSize, nil
}

// Seed inserts count sample notes and returns how many were created.
// Count is clamped into [1, MaxSeedCount]; zero or negative means the
// default.
func (s *Service) Seed(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		count = DefaultSeedCount
	}
	if count > MaxSeedCount {
		count = MaxSeedCount
	}
	for i := 1; i <= count; i++ {
		tags := []string{"notes"}
		if i%2 == 1 {
			tags = []string{"sample", "demo"}
		}
		if _, err := s.Create(ctx,
			fmt.Sprintf("Sample Note %d", i),
			fmt.Sprintf("This is a sample note #%d.", i),
			tags,
		); err != nil {
			return 0, fmt.Errorf("noteservice: seed note %d: %w", i, err)
		}
	}
	return count, nil
}

// Reset removes all notes unconditionally.
func (s *Service) Reset(_ context.Context) error {
	return s.store.Reset()
}

// Count returns the number of live notes.
func (s *Service) Count(_ context.Context) (int, error) {
	return s.store.Count()
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
