// Package domain provides type-safe identifiers and value objects so the
// compiler prevents mixing up a book's identity with a borrower's.
package domain

import (
	"strings"

	dErrors "biblio/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a BookID where a BorrowerID is expected.
// Values are normalized to uppercase so equality is stable across callers.
type (
	BookID     string
	BorrowerID string
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseBookID(s string) (BookID, error) {
	v, err := parseID(s, "book ID")
	return BookID(v), err
}

func ParseBorrowerID(s string) (BorrowerID, error) {
	v, err := parseID(s, "borrower ID")
	return BorrowerID(v), err
}

// String methods - for logging and debugging.

func (id BookID) String() string     { return string(id) }
func (id BorrowerID) String() string { return string(id) }

// IsNil checks - used for service-layer validation.

func (id BookID) IsNil() bool     { return id == "" }
func (id BorrowerID) IsNil() bool { return id == "" }

// parseID is the shared validation logic: identifiers must be non-blank
// and are uppercased on the way in.
func parseID(s, label string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, label+" cannot be empty")
	}
	return strings.ToUpper(s), nil
}
