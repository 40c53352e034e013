package service

import (
	"context"
	"errors"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// RegisterBorrower registers a new borrower.
//
// The email-uniqueness check runs before an identifier is generated and
// before the name reaches the Borrower factory, so a request with both a
// duplicate email and a blank name reports the duplicate. Callers observe
// this ordering; tests pin it.
func (s *Service) RegisterBorrower(ctx context.Context, cmd RegisterBorrowerCommand) (*models.Borrower, error) {
	email, err := domain.ParseEmailAddress(cmd.Email)
	if err != nil {
		return nil, err
	}

	var borrower *models.Borrower
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		taken, err := s.borrowers.ExistsByEmail(txCtx, email)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check email availability")
		}
		if taken {
			return dErrors.New(dErrors.CodeConflict, "email "+email.String()+" is already registered")
		}

		borrowerID, err := newBorrowerID(s.idgen)
		if err != nil {
			return err
		}

		b, err := models.RegisterBorrower(borrowerID, cmd.Name, email)
		if err != nil {
			return err
		}

		if err := s.borrowers.Create(txCtx, b); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "email "+email.String()+" is already registered")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create borrower")
		}

		borrower = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.incrementBorrowersRegistered()
	s.logInfo(ctx, "borrower registered", "borrower_id", borrower.ID)
	return borrower, nil
}

// ListBorrowers returns all registered borrowers.
// An empty store yields an empty slice, never an error.
func (s *Service) ListBorrowers(ctx context.Context) ([]*models.Borrower, error) {
	borrowers, err := s.borrowers.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list borrowers")
	}
	if borrowers == nil {
		borrowers = []*models.Borrower{}
	}
	return borrowers, nil
}

func (s *Service) incrementBorrowersRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementBorrowersRegistered()
	}
}
