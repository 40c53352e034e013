package handler

import (
	"strings"

	dErrors "biblio/pkg/domain-errors"
)

// HTTP request DTOs. Shallow checks (presence, trimming) happen here;
// format validation stays in the domain factories so every caller of the
// service sees the same errors.

type RegisterBorrowerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *RegisterBorrowerRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *RegisterBorrowerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	return nil
}

type RegisterBookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (r *RegisterBookRequest) Normalize() {
	if r == nil {
		return
	}
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

func (r *RegisterBookRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.ISBN == "" {
		return dErrors.New(dErrors.CodeValidation, "isbn is required")
	}
	return nil
}

type LoanRequest struct {
	BorrowerID string `json:"borrower_id"`
}

func (r *LoanRequest) Normalize() {
	if r == nil {
		return
	}
	r.BorrowerID = strings.TrimSpace(r.BorrowerID)
}

func (r *LoanRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.BorrowerID == "" {
		return dErrors.New(dErrors.CodeValidation, "borrower_id is required")
	}
	return nil
}

type UpdateCatalogEntryRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (r *UpdateCatalogEntryRequest) Normalize() {
	if r == nil {
		return
	}
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

// Validate checks title before author; the ISBN in the path is parsed
// after both, by the service, so a blank title outranks a bad ISBN.
func (r *UpdateCatalogEntryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title cannot be blank")
	}
	if r.Author == "" {
		return dErrors.New(dErrors.CodeValidation, "author cannot be blank")
	}
	return nil
}
