package models

import (
	"time"

	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// Book is one physical copy of a catalog entry. Many books may share one
// ISBN; lending one copy never affects its siblings.
//
// Invariant: BorrowerID and BorrowedOn are both set or both nil.
type Book struct {
	ID         domain.BookID      `json:"id"`
	ISBN       domain.ISBN        `json:"isbn"`
	BorrowerID *domain.BorrowerID `json:"borrower_id,omitempty"`
	BorrowedOn *time.Time         `json:"borrowed_on,omitempty"`
}

// RegisterBook creates a new copy in the available state.
func RegisterBook(id domain.BookID, isbn domain.ISBN) *Book {
	return &Book{
		ID:   id,
		ISBN: isbn,
	}
}

// Available reports whether the copy can be borrowed.
func (b *Book) Available() bool {
	return b.BorrowerID == nil
}

// Borrow transitions the copy to the borrowed state.
// A zero borrowedOn defaults to the current UTC time.
// Returns a conflict error if the copy is already borrowed, even by the
// same borrower.
func (b *Book) Borrow(borrowerID domain.BorrowerID, borrowedOn time.Time) error {
	if !b.Available() {
		return dErrors.New(dErrors.CodeConflict, "book "+b.ID.String()+" is already borrowed")
	}
	if borrowedOn.IsZero() {
		borrowedOn = time.Now().UTC()
	}
	b.BorrowerID = &borrowerID
	b.BorrowedOn = &borrowedOn
	return nil
}

// Return transitions the copy back to the available state, clearing both
// the borrower and the borrow timestamp.
// Returns a conflict error if the copy is not currently borrowed.
func (b *Book) Return() error {
	if b.Available() {
		return dErrors.New(dErrors.CodeConflict, "book "+b.ID.String()+" is not currently borrowed")
	}
	b.BorrowerID = nil
	b.BorrowedOn = nil
	return nil
}
