package borrower

import (
	"context"
	"slices"
	"strings"
	"sync"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
)

// ErrNotFound is returned when a borrower is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores borrowers in memory for tests and the demo environment.
type InMemory struct {
	mu        sync.RWMutex
	borrowers map[domain.BorrowerID]models.Borrower
	emailIdx  map[domain.EmailAddress]domain.BorrowerID
}

// NewInMemory creates an in-memory borrower store.
func NewInMemory() *InMemory {
	return &InMemory{
		borrowers: make(map[domain.BorrowerID]models.Borrower),
		emailIdx:  make(map[domain.EmailAddress]domain.BorrowerID),
	}
}

// FindByID retrieves a borrower by identifier.
func (s *InMemory) FindByID(_ context.Context, borrowerID domain.BorrowerID) (*models.Borrower, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.borrowers[borrowerID]; ok {
		return &b, nil
	}
	return nil, ErrNotFound
}

// FindAll returns every borrower, ordered by identifier for stable listings.
func (s *InMemory) FindAll(_ context.Context) ([]*models.Borrower, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	borrowers := make([]*models.Borrower, 0, len(s.borrowers))
	for _, b := range s.borrowers {
		borrower := b
		borrowers = append(borrowers, &borrower)
	}
	slices.SortFunc(borrowers, func(a, b *models.Borrower) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return borrowers, nil
}

// ExistsByEmail reports whether any borrower is registered with the
// normalized email address.
func (s *InMemory) ExistsByEmail(_ context.Context, email domain.EmailAddress) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.emailIdx[email]
	return ok, nil
}

// Create atomically stores the borrower if the email is not already taken.
func (s *InMemory) Create(_ context.Context, borrower *models.Borrower) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emailIdx[borrower.EmailAddress]; taken {
		return sentinel.ErrAlreadyUsed
	}
	if _, exists := s.borrowers[borrower.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.borrowers[borrower.ID] = *borrower
	s.emailIdx[borrower.EmailAddress] = borrower.ID
	return nil
}
