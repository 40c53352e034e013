package domain

import (
	"strings"

	dErrors "biblio/pkg/domain-errors"
)

// ISBN identifies a catalog entry by its normalized ISBN-10 or ISBN-13 form.
// Normalization strips hyphens and spaces and uppercases, so
// "978-0-13-235088-4" and "9780132350884" are the same value.
// Check-digit math is deliberately not verified.
type ISBN string

// ParseISBN validates and normalizes a raw ISBN string.
// Valid forms after normalization: exactly 10 characters (digits, the last
// may be 'X') or exactly 13 digits.
func ParseISBN(s string) (ISBN, error) {
	normalized := normalizeISBN(s)
	if normalized == "" {
		return "", dErrors.New(dErrors.CodeValidation, "ISBN cannot be empty")
	}
	if !isValidISBN(normalized) {
		return "", dErrors.New(dErrors.CodeValidation, "ISBN must be 10 characters (digits, last may be X) or 13 digits")
	}
	return ISBN(normalized), nil
}

// TryParseISBN is the non-failing variant for callers that branch on validity.
func TryParseISBN(s string) (ISBN, bool) {
	isbn, err := ParseISBN(s)
	return isbn, err == nil
}

func (i ISBN) String() string { return string(i) }

func (i ISBN) IsNil() bool { return i == "" }

func normalizeISBN(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

func isValidISBN(s string) bool {
	switch len(s) {
	case 10:
		for i, r := range s {
			if r >= '0' && r <= '9' {
				continue
			}
			// ISBN-10 allows 'X' as the final check character.
			if r == 'X' && i == 9 {
				continue
			}
			return false
		}
		return true
	case 13:
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	default:
		return false
	}
}
