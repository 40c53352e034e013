package service

import (
	"errors"

	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// Error wrapping helpers translate sentinel store errors to domain errors.

func wrapBookErr(err error, bookID domain.BookID) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "book "+bookID.String()+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load book")
}

func wrapBorrowerErr(err error, borrowerID domain.BorrowerID) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "borrower "+borrowerID.String()+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load borrower")
}

func wrapCatalogErr(err error, isbn domain.ISBN) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "catalog entry "+isbn.String()+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog entry")
}

// The newXxxID helpers draw a fresh identifier and normalize it through the
// domain parse factory so generated and client-supplied IDs behave the same.

func newBookID(g IDGenerator) (domain.BookID, error) {
	id, err := domain.ParseBookID(g.NewID())
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "id generator produced an invalid book ID")
	}
	return id, nil
}

func newBorrowerID(g IDGenerator) (domain.BorrowerID, error) {
	id, err := domain.ParseBorrowerID(g.NewID())
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "id generator produced an invalid borrower ID")
	}
	return id, nil
}
