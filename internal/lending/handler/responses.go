package handler

import (
	"time"

	"biblio/internal/lending/models"
)

// HTTP response DTOs - convert domain objects to API serialization.

type BorrowerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CatalogEntryResponse struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type CatalogEntryMetadata struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type BookDetailsResponse struct {
	ID           string                `json:"id"`
	ISBN         string                `json:"isbn"`
	CatalogEntry *CatalogEntryMetadata `json:"catalog_entry,omitempty"`
	IsAvailable  bool                  `json:"is_available"`
	BorrowedBy   string                `json:"borrowed_by,omitempty"`
	BorrowedOn   *time.Time            `json:"borrowed_on,omitempty"`
}

func toBorrowerResponse(b *models.Borrower) *BorrowerResponse {
	return &BorrowerResponse{
		ID:    b.ID.String(),
		Name:  b.Name,
		Email: b.EmailAddress.String(),
	}
}

func toCatalogEntryResponse(e *models.CatalogEntry) *CatalogEntryResponse {
	return &CatalogEntryResponse{
		ISBN:   e.ISBN.String(),
		Title:  e.Title,
		Author: e.Author,
	}
}

func toBookDetailsResponse(d *models.BookDetails) *BookDetailsResponse {
	resp := &BookDetailsResponse{
		ID:          d.Book.ID.String(),
		ISBN:        d.Book.ISBN.String(),
		IsAvailable: d.Book.Available(),
		BorrowedOn:  d.Book.BorrowedOn,
	}
	if d.Book.BorrowerID != nil {
		resp.BorrowedBy = d.Book.BorrowerID.String()
	}
	if d.CatalogEntry != nil {
		resp.CatalogEntry = &CatalogEntryMetadata{
			Title:  d.CatalogEntry.Title,
			Author: d.CatalogEntry.Author,
		}
	}
	return resp
}
