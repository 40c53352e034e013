package service

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

const (
	testISBN       = domain.ISBN("9780132350884")
	testBookID     = domain.BookID("BOOK-1")
	testBorrowerID = domain.BorrowerID("MEMBER-1")
)

func (s *ServiceSuite) member() *models.Borrower {
	return &models.Borrower{
		ID:           testBorrowerID,
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
	}
}

func (s *ServiceSuite) cleanCodeEntry() *models.CatalogEntry {
	entry, err := models.NewCatalogEntry(testISBN, "Clean Code", "Robert C. Martin")
	s.Require().NoError(err)
	return entry
}

func (s *ServiceSuite) availableBook() *models.Book {
	return models.RegisterBook(testBookID, testISBN)
}

func (s *ServiceSuite) borrowedBook(by domain.BorrowerID) *models.Book {
	book := models.RegisterBook(testBookID, testISBN)
	s.Require().NoError(book.Borrow(by, time.Now().UTC()))
	return book
}

func (s *ServiceSuite) TestRegisterBookFirstCopy() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(nil, sentinel.ErrNotFound)
	s.catalog.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.CatalogEntry) error {
			s.Equal(testISBN, entry.ISBN)
			s.Equal("Clean Code", entry.Title)
			return nil
		})
	s.idgen.EXPECT().NewID().Return("BOOK-1")
	s.books.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, book *models.Book) error {
			s.Equal(testBookID, book.ID)
			s.Equal(testISBN, book.ISBN)
			s.True(book.Available())
			return nil
		})

	details, err := s.service.RegisterBook(s.ctx, RegisterBookCommand{
		ISBN:   "978-0-13-235088-4",
		Title:  "Clean Code",
		Author: "Robert C. Martin",
	})
	s.Require().NoError(err)
	s.Equal(testBookID, details.Book.ID)
	s.Equal("Clean Code", details.CatalogEntry.Title)
}

func (s *ServiceSuite) TestRegisterBookAdditionalCopy() {
	// Metadata comparison is case-insensitive; the existing entry stands.
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)
	s.idgen.EXPECT().NewID().Return("BOOK-2")
	s.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	details, err := s.service.RegisterBook(s.ctx, RegisterBookCommand{
		ISBN:   "9780132350884",
		Title:  "CLEAN CODE",
		Author: "robert c. martin",
	})
	s.Require().NoError(err)
	s.Equal(domain.BookID("BOOK-2"), details.Book.ID)
	s.Equal("Clean Code", details.CatalogEntry.Title)
}

func (s *ServiceSuite) TestRegisterBookMetadataConflict() {
	// No identifier is generated and no copy is staged on a mismatch.
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)

	_, err := s.service.RegisterBook(s.ctx, RegisterBookCommand{
		ISBN:   "9780132350884",
		Title:  "A Different Title",
		Author: "Robert C. Martin",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "different metadata")
}

func (s *ServiceSuite) TestRegisterBookInvalidISBN() {
	_, err := s.service.RegisterBook(s.ctx, RegisterBookCommand{
		ISBN:   "12345",
		Title:  "Clean Code",
		Author: "Robert C. Martin",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestRegisterBookBlankTitle() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.RegisterBook(s.ctx, RegisterBookCommand{
		ISBN:   "9780132350884",
		Title:  "  ",
		Author: "Robert C. Martin",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestBorrowBook() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.availableBook(), nil)
	s.borrowers.EXPECT().FindByID(gomock.Any(), testBorrowerID).Return(s.member(), nil)
	s.books.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, book *models.Book) error {
			s.Require().NotNil(book.BorrowerID)
			s.Equal(testBorrowerID, *book.BorrowerID)
			s.NotNil(book.BorrowedOn)
			return nil
		})
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)

	details, err := s.service.BorrowBook(s.ctx, BorrowBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().NoError(err)
	s.False(details.Book.Available())
	s.Equal("Clean Code", details.CatalogEntry.Title)
}

func (s *ServiceSuite) TestBorrowBookMissingBookWins() {
	// The book lookup runs first: when both the book and the borrower are
	// missing the borrower is never checked.
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.BorrowBook(s.ctx, BorrowBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MISSING",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.ErrorContains(err, "book BOOK-1 not found")
}

func (s *ServiceSuite) TestBorrowBookMissingBorrower() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.availableBook(), nil)
	s.borrowers.EXPECT().FindByID(gomock.Any(), testBorrowerID).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.BorrowBook(s.ctx, BorrowBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.ErrorContains(err, "borrower MEMBER-1 not found")
}

func (s *ServiceSuite) TestBorrowBookAlreadyBorrowed() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.borrowedBook("MEMBER-2"), nil)
	s.borrowers.EXPECT().FindByID(gomock.Any(), testBorrowerID).Return(s.member(), nil)

	_, err := s.service.BorrowBook(s.ctx, BorrowBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "already borrowed")
}

func (s *ServiceSuite) TestBorrowBookSameBorrowerTwice() {
	// Holding the copy grants no exception; the second borrow conflicts too.
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.borrowedBook(testBorrowerID), nil)
	s.borrowers.EXPECT().FindByID(gomock.Any(), testBorrowerID).Return(s.member(), nil)

	_, err := s.service.BorrowBook(s.ctx, BorrowBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestReturnBook() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.borrowedBook(testBorrowerID), nil)
	s.books.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, book *models.Book) error {
			s.Nil(book.BorrowerID)
			s.Nil(book.BorrowedOn)
			return nil
		})
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)

	details, err := s.service.ReturnBook(s.ctx, ReturnBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().NoError(err)
	s.True(details.Book.Available())
}

func (s *ServiceSuite) TestReturnBookNotBorrowed() {
	// An available copy reports "not currently borrowed" regardless of the
	// borrower named in the request.
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.availableBook(), nil)

	_, err := s.service.ReturnBook(s.ctx, ReturnBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "not currently borrowed")
}

func (s *ServiceSuite) TestReturnBookWrongBorrower() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(s.borrowedBook("MEMBER-2"), nil)

	_, err := s.service.ReturnBook(s.ctx, ReturnBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "not borrowed by borrower MEMBER-1")
}

func (s *ServiceSuite) TestReturnBookMissingBook() {
	s.books.EXPECT().FindByID(gomock.Any(), testBookID).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.ReturnBook(s.ctx, ReturnBookCommand{
		BookID:     "BOOK-1",
		BorrowerID: "MEMBER-1",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestListBooks() {
	first := models.RegisterBook("BOOK-1", testISBN)
	second := models.RegisterBook("BOOK-2", testISBN)
	entry := s.cleanCodeEntry()

	s.books.EXPECT().FindAll(gomock.Any()).Return([]*models.Book{first, second}, nil)
	// Duplicate ISBNs collapse to one batch lookup.
	s.catalog.EXPECT().
		FindByISBNs(gomock.Any(), []domain.ISBN{testISBN}).
		Return(map[domain.ISBN]*models.CatalogEntry{testISBN: entry}, nil)

	details, err := s.service.ListBooks(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(details, 2)
	s.Equal(entry, details[0].CatalogEntry)
	s.Equal(entry, details[1].CatalogEntry)
}

func (s *ServiceSuite) TestListBooksEmpty() {
	s.books.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	details, err := s.service.ListBooks(s.ctx)
	s.Require().NoError(err)
	s.NotNil(details)
	s.Empty(details)
}
