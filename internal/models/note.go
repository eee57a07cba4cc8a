// Package models defines the domain types for Jot.
package models

import "time"

// Note is the single persisted entity: a small text record with tags.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotePatch carries the mutable fields of a partial update.
// A nil field means "leave unchanged"; Tags, when set, replaces the
// whole tag list.
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// Empty reports whether the patch carries no fields at all.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil
}
