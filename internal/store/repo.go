package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/fenwick/jot/internal/apperr"
	"github.com/fenwick/jot/internal/models"
)

// Insert stores a fully-populated note. The caller owns id generation
// and timestamps; inserting an id that already exists returns
// apperr.ErrAlreadyExists.
func (db *DB) Insert(n *models.Note) error {
	tagsJSON, _ := json.Marshal(n.Tags)
	_, err := db.conn.Exec(`
		INSERT INTO notes (id, title, content, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, string(tagsJSON), n.CreatedAt, n.UpdatedAt)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("store: insert note %s: %w", n.ID, apperr.ErrAlreadyExists)
		}
		return fmt.Errorf("store: insert note: %w", err)
	}
	return nil
}

// Get returns the note with the given id, or apperr.ErrNotFound.
func (db *DB) Get(id string) (*models.Note, error) {
	row := db.conn.QueryRow(`
		SELECT id, title, content, tags, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return n, nil
}

// Update applies the supplied patch fields inside a transaction and
// refreshes updated_at. An empty patch leaves the row untouched.
func (db *DB) Update(id string, patch models.NotePatch, now time.Time) (*models.Note, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	row := tx.QueryRow(`
		SELECT id, title, content, tags, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: load note: %w", err)
	}

	if patch.Empty() {
		return n, tx.Commit()
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Tags != nil {
		n.Tags = *patch.Tags
	}
	n.UpdatedAt = now

	tagsJSON, _ := json.Marshal(n.Tags)
	if _, err := tx.Exec(`
		UPDATE notes SET title = ?, content = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, n.Title, n.Content, string(tagsJSON), n.UpdatedAt, n.ID); err != nil {
		return nil, fmt.Errorf("store: update note: %w", err)
	}

	return n, tx.Commit()
}

// Delete removes the note with the given id, or returns apperr.ErrNotFound.
func (db *DB) Delete(id string) error {
	res, err := db.conn.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// List returns one page of notes plus the total count of the filtered set.
// query narrows to notes whose title or content contains it, matched with
// contains_fold so the comparison is Unicode case-insensitive and SQL
// wildcards stay literal. tag narrows to notes carrying that exact tag.
// Order is created_at ASC with id as the tie-break, which keeps pages
// deterministic when many notes share a timestamp (seeding inserts a batch
// inside one clock tick).
func (db *DB) List(limit, offset int, query, tag string) ([]models.Note, int, error) {
	var (
		where []string
		args  []any
	)
	if query != "" {
		where = append(where, `(contains_fold(title, ?) OR contains_fold(content, ?))`)
		args = append(args, query, query)
	}
	if tag != "" {
		where = append(where, `EXISTS (SELECT 1 FROM json_each(notes.tags) WHERE json_each.value = ?)`)
		args = append(args, tag)
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM notes`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store: count notes: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT id, title, content, tags, created_at, updated_at
		FROM notes`+cond+`
		ORDER BY created_at ASC, id ASC
		LIMIT ? OFFSET ?
	`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()

	out := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("store: scan note: %w", err)
		}
		out = append(out, *n)
	}
	return out, total, rows.Err()
}

// Reset removes all notes unconditionally.
func (db *DB) Reset() error {
	if _, err := db.conn.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("store: reset: %w", err)
	}
	return nil
}

// Count returns the number of live notes.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*models.Note, error) {
	var (
		n        models.Note
		tagsJSON string
	)
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &tagsJSON, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &n.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}
