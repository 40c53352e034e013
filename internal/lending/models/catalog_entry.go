package models

import (
	"strings"

	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// CatalogEntry is the bibliographic record shared by every physical copy
// with the same ISBN. It is keyed by the ISBN itself; there is no surrogate id.
type CatalogEntry struct {
	ISBN   domain.ISBN `json:"isbn"`
	Title  string      `json:"title"`
	Author string      `json:"author"`
}

// NewCatalogEntry creates a catalog entry from an already-parsed ISBN.
// Title and author must be non-blank.
func NewCatalogEntry(isbn domain.ISBN, title, author string) (*CatalogEntry, error) {
	if strings.TrimSpace(title) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "title cannot be blank")
	}
	if strings.TrimSpace(author) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "author cannot be blank")
	}
	return &CatalogEntry{
		ISBN:   isbn,
		Title:  title,
		Author: author,
	}, nil
}

// NewCatalogEntryFromString parses the raw ISBN first and propagates its
// validation failure before looking at title or author.
func NewCatalogEntryFromString(rawISBN, title, author string) (*CatalogEntry, error) {
	isbn, err := domain.ParseISBN(rawISBN)
	if err != nil {
		return nil, err
	}
	return NewCatalogEntry(isbn, title, author)
}

// UpdateTitle replaces the title. Updating to the current value is a no-op.
func (e *CatalogEntry) UpdateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return dErrors.New(dErrors.CodeValidation, "title cannot be blank")
	}
	if title == e.Title {
		return nil
	}
	e.Title = title
	return nil
}

// UpdateAuthor replaces the author. Updating to the current value is a no-op.
func (e *CatalogEntry) UpdateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return dErrors.New(dErrors.CodeValidation, "author cannot be blank")
	}
	if author == e.Author {
		return nil
	}
	e.Author = author
	return nil
}

// MatchesMetadata compares title and author case-insensitively.
// Used to detect re-registration of an ISBN with conflicting metadata.
func (e *CatalogEntry) MatchesMetadata(title, author string) bool {
	return strings.EqualFold(e.Title, title) && strings.EqualFold(e.Author, author)
}
