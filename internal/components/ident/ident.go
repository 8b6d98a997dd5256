// Package ident derives file identifiers for component payloads.
//
// Path conventions embed the component id in the file name. A payload
// without an id still has to be saveable (a missing id is only a
// warning), so the identifier falls back to a slug of the display name
// and finally to a generated UUID.
package ident

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// FileID returns the identifier to embed in a component's file name:
// the id when present, else a slug of name, else a fresh UUID.
func FileID(id, name string) string {
	if id != "" {
		return Sanitize(id)
	}
	if slug := Slug(name); slug != "" {
		return slug
	}
	return uuid.New().String()
}

// Sanitize strips path-hostile characters from an id, keeping letters,
// digits, dash, underscore and dot.
func Sanitize(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug converts a display name into a lowercase file identifier:
// spaces become dashes, everything else non-alphanumeric is dropped.
func Slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FromPath extracts the id embedded in a file name: the base name with
// the given prefix and any extension removed.
func FromPath(filePath, prefix string) string {
	base := path.Base(filePath)
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.TrimPrefix(base, prefix)
}
