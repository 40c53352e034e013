package models

import (
	"strings"

	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// Borrower is a registered library member.
type Borrower struct {
	ID           domain.BorrowerID   `json:"id"`
	Name         string              `json:"name"`
	EmailAddress domain.EmailAddress `json:"email"`
}

// RegisterBorrower creates a borrower. The name must be non-blank; the email
// has already been validated by its own factory.
func RegisterBorrower(id domain.BorrowerID, name string, email domain.EmailAddress) (*Borrower, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name cannot be blank")
	}
	return &Borrower{
		ID:           id,
		Name:         name,
		EmailAddress: email,
	}, nil
}

// UpdateName replaces the name. Updating to the current value is a no-op.
func (b *Borrower) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return dErrors.New(dErrors.CodeValidation, "name cannot be blank")
	}
	if name == b.Name {
		return nil
	}
	b.Name = name
	return nil
}

// UpdateEmailAddress replaces the email address. Updating to the current
// value is a no-op.
func (b *Borrower) UpdateEmailAddress(email domain.EmailAddress) {
	if email == b.EmailAddress {
		return
	}
	b.EmailAddress = email
}
