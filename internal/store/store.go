package store

import (
	"time"

	"github.com/fenwick/jot/internal/models"
)

// NoteStore defines the interface for note persistence operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type NoteStore interface {
	Insert(n *models.Note) error
	Get(id string) (*models.Note, error)
	Update(id string, patch models.NotePatch, now time.Time) (*models.Note, error)
	Delete(id string) error
	List(limit, offset int, query, tag string) ([]models.Note, int, error)
	Reset() error
	Count() (int, error)
	Close() error
}

// Verify *DB satisfies NoteStore at compile time.
var _ NoteStore = (*DB)(nil)
