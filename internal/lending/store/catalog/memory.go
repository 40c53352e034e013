package catalog

import (
	"context"
	"sync"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
)

// ErrNotFound is returned when a catalog entry is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores catalog entries in memory for tests and the demo environment.
// Values are copied on the way in and out so callers never share state with
// the store; mutations only persist through Create/Update.
type InMemory struct {
	mu      sync.RWMutex
	entries map[domain.ISBN]models.CatalogEntry
}

// NewInMemory creates an in-memory catalog entry store.
func NewInMemory() *InMemory {
	return &InMemory{
		entries: make(map[domain.ISBN]models.CatalogEntry),
	}
}

// FindByISBN retrieves a catalog entry by its normalized ISBN.
func (s *InMemory) FindByISBN(_ context.Context, isbn domain.ISBN) (*models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[isbn]; ok {
		return &e, nil
	}
	return nil, ErrNotFound
}

// FindByISBNs retrieves catalog entries for a batch of ISBNs.
// Missing ISBNs are simply absent from the result map.
func (s *InMemory) FindByISBNs(_ context.Context, isbns []domain.ISBN) (map[domain.ISBN]*models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[domain.ISBN]*models.CatalogEntry, len(isbns))
	for _, isbn := range isbns {
		if e, ok := s.entries[isbn]; ok {
			entry := e
			result[isbn] = &entry
		}
	}
	return result, nil
}

// Create stores a new catalog entry.
func (s *InMemory) Create(_ context.Context, entry *models.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[entry.ISBN]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.entries[entry.ISBN] = *entry
	return nil
}

// Update replaces an existing catalog entry.
func (s *InMemory) Update(_ context.Context, entry *models.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[entry.ISBN]; !exists {
		return ErrNotFound
	}
	s.entries[entry.ISBN] = *entry
	return nil
}
