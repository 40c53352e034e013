package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"biblio/internal/lending/models"
	"biblio/pkg/domain"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks CatalogEntryStore,BookStore,BorrowerStore,IDGenerator

// CatalogEntryStore abstracts persistence for catalog entries.
// Implementations return sentinel.ErrNotFound for lookup misses so the
// service can translate into domain errors exactly once.
type CatalogEntryStore interface {
	FindByISBN(ctx context.Context, isbn domain.ISBN) (*models.CatalogEntry, error)
	FindByISBNs(ctx context.Context, isbns []domain.ISBN) (map[domain.ISBN]*models.CatalogEntry, error)
	Create(ctx context.Context, entry *models.CatalogEntry) error
	Update(ctx context.Context, entry *models.CatalogEntry) error
}

// BookStore abstracts persistence for physical copies.
type BookStore interface {
	FindByID(ctx context.Context, bookID domain.BookID) (*models.Book, error)
	FindAll(ctx context.Context) ([]*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
}

// BorrowerStore abstracts persistence for borrowers.
type BorrowerStore interface {
	FindByID(ctx context.Context, borrowerID domain.BorrowerID) (*models.Borrower, error)
	FindAll(ctx context.Context) ([]*models.Borrower, error)
	ExistsByEmail(ctx context.Context, email domain.EmailAddress) (bool, error)
	Create(ctx context.Context, borrower *models.Borrower) error
}

// IDGenerator produces globally-unique identifiers for new aggregates.
// Injected so tests can assert it is not reached on conflict paths.
type IDGenerator interface {
	NewID() string
}

// uuidGenerator is the production IDGenerator. Identifiers are uppercased
// to match the normalization the parse factories apply at trust boundaries.
type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return strings.ToUpper(uuid.New().String())
}
