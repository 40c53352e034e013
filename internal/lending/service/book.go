package service

import (
	"context"
	"errors"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
	"biblio/pkg/platform/middleware/requesttime"
)

// RegisterBook registers a physical copy. The catalog entry for the ISBN is
// created on first registration; later registrations must carry matching
// metadata (compared case-insensitively) and only add another copy.
func (s *Service) RegisterBook(ctx context.Context, cmd RegisterBookCommand) (*models.BookDetails, error) {
	isbn, err := domain.ParseISBN(cmd.ISBN)
	if err != nil {
		return nil, err
	}

	var details *models.BookDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.catalog.FindByISBN(txCtx, isbn)
		switch {
		case err == nil:
			if !entry.MatchesMetadata(cmd.Title, cmd.Author) {
				return dErrors.New(dErrors.CodeConflict,
					"catalog entry "+isbn.String()+" already exists with different metadata")
			}
		case errors.Is(err, sentinel.ErrNotFound):
			entry, err = models.NewCatalogEntry(isbn, cmd.Title, cmd.Author)
			if err != nil {
				return err
			}
			if err := s.catalog.Create(txCtx, entry); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create catalog entry")
			}
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog entry")
		}

		bookID, err := newBookID(s.idgen)
		if err != nil {
			return err
		}

		book := models.RegisterBook(bookID, isbn)
		if err := s.books.Create(txCtx, book); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create book")
		}

		details = &models.BookDetails{Book: book, CatalogEntry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.incrementBooksRegistered()
	s.logInfo(ctx, "book registered", "book_id", details.Book.ID, "isbn", details.Book.ISBN)
	return details, nil
}

// BorrowBook lends a copy to a borrower.
//
// Existence checks run in a fixed, observable order: the book is checked
// strictly before the borrower, so a request naming a missing book and a
// missing borrower reports the missing book.
func (s *Service) BorrowBook(ctx context.Context, cmd BorrowBookCommand) (*models.BookDetails, error) {
	bookID, err := domain.ParseBookID(cmd.BookID)
	if err != nil {
		return nil, err
	}
	borrowerID, err := domain.ParseBorrowerID(cmd.BorrowerID)
	if err != nil {
		return nil, err
	}

	var details *models.BookDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.books.FindByID(txCtx, bookID)
		if err != nil {
			return wrapBookErr(err, bookID)
		}

		if _, err := s.borrowers.FindByID(txCtx, borrowerID); err != nil {
			return wrapBorrowerErr(err, borrowerID)
		}

		if err := book.Borrow(borrowerID, requesttime.Now(txCtx).UTC()); err != nil {
			return err
		}

		if err := s.books.Update(txCtx, book); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update book")
		}

		entry, err := s.catalog.FindByISBN(txCtx, book.ISBN)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog entry")
		}

		details = &models.BookDetails{Book: book, CatalogEntry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.incrementLoansStarted()
	s.logInfo(ctx, "book borrowed", "book_id", bookID, "borrower_id", borrowerID)
	return details, nil
}

// ReturnBook takes a borrowed copy back.
//
// The not-borrowed conflict is checked strictly before the borrower-match
// conflict, so returning an available copy reports "not currently borrowed"
// regardless of which borrower asks.
func (s *Service) ReturnBook(ctx context.Context, cmd ReturnBookCommand) (*models.BookDetails, error) {
	bookID, err := domain.ParseBookID(cmd.BookID)
	if err != nil {
		return nil, err
	}
	borrowerID, err := domain.ParseBorrowerID(cmd.BorrowerID)
	if err != nil {
		return nil, err
	}

	var details *models.BookDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.books.FindByID(txCtx, bookID)
		if err != nil {
			return wrapBookErr(err, bookID)
		}

		if book.BorrowerID == nil {
			return dErrors.New(dErrors.CodeConflict, "book "+bookID.String()+" is not currently borrowed")
		}
		if *book.BorrowerID != borrowerID {
			return dErrors.New(dErrors.CodeConflict,
				"book "+bookID.String()+" is not borrowed by borrower "+borrowerID.String())
		}

		if err := book.Return(); err != nil {
			return err
		}

		if err := s.books.Update(txCtx, book); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update book")
		}

		entry, err := s.catalog.FindByISBN(txCtx, book.ISBN)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog entry")
		}

		details = &models.BookDetails{Book: book, CatalogEntry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.incrementLoansCompleted()
	s.logInfo(ctx, "book returned", "book_id", bookID, "borrower_id", borrowerID)
	return details, nil
}

// ListBooks returns every copy paired with its catalog entry, resolved in
// one batch. An empty store yields an empty slice, never an error.
func (s *Service) ListBooks(ctx context.Context) ([]models.BookDetails, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list books")
	}
	if len(books) == 0 {
		return []models.BookDetails{}, nil
	}

	isbns := make([]domain.ISBN, 0, len(books))
	seen := make(map[domain.ISBN]struct{}, len(books))
	for _, book := range books {
		if _, ok := seen[book.ISBN]; ok {
			continue
		}
		seen[book.ISBN] = struct{}{}
		isbns = append(isbns, book.ISBN)
	}

	entries, err := s.catalog.FindByISBNs(ctx, isbns)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve catalog entries")
	}

	details := make([]models.BookDetails, 0, len(books))
	for _, book := range books {
		details = append(details, models.BookDetails{
			Book:         book,
			CatalogEntry: entries[book.ISBN],
		})
	}
	return details, nil
}

func (s *Service) incrementBooksRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementBooksRegistered()
	}
}

func (s *Service) incrementLoansStarted() {
	if s.metrics != nil {
		s.metrics.IncrementLoansStarted()
	}
}

func (s *Service) incrementLoansCompleted() {
	if s.metrics != nil {
		s.metrics.IncrementLoansCompleted()
	}
}
