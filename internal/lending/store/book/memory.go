package book

import (
	"context"
	"slices"
	"strings"
	"sync"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores physical copies in memory for tests and the demo environment.
type InMemory struct {
	mu    sync.RWMutex
	books map[domain.BookID]models.Book
}

// NewInMemory creates an in-memory book store.
func NewInMemory() *InMemory {
	return &InMemory{
		books: make(map[domain.BookID]models.Book),
	}
}

// FindByID retrieves a copy by its identifier.
func (s *InMemory) FindByID(_ context.Context, bookID domain.BookID) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.books[bookID]; ok {
		return &b, nil
	}
	return nil, ErrNotFound
}

// FindAll returns every copy, ordered by identifier for stable listings.
func (s *InMemory) FindAll(_ context.Context) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	books := make([]*models.Book, 0, len(s.books))
	for _, b := range s.books {
		book := b
		books = append(books, &book)
	}
	slices.SortFunc(books, func(a, b *models.Book) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return books, nil
}

// Create stores a new copy.
func (s *InMemory) Create(_ context.Context, book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.books[book.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.books[book.ID] = *book
	return nil
}

// Update replaces an existing copy.
func (s *InMemory) Update(_ context.Context, book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.books[book.ID]; !exists {
		return ErrNotFound
	}
	s.books[book.ID] = *book
	return nil
}
