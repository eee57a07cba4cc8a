// Package id generates unique, URL-friendly identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g. "note-V1StGXR8_Z5jdHi6B-myT").
//
// NanoIDs are compact (21 characters), URL-safe, and random enough that
// concurrent writers never need to coordinate id assignment.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
