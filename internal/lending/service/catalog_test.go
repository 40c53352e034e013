package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	dErrors "biblio/pkg/domain-errors"
)

func (s *ServiceSuite) TestGetCatalogEntryByISBN() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)

	entry, err := s.service.GetCatalogEntryByISBN(s.ctx, "978-0-13-235088-4")
	s.Require().NoError(err)
	s.Equal(testISBN, entry.ISBN)
	s.Equal("Clean Code", entry.Title)
}

func (s *ServiceSuite) TestGetCatalogEntryByISBNNotFound() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.GetCatalogEntryByISBN(s.ctx, "9780132350884")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.ErrorContains(err, "catalog entry 9780132350884 not found")
}

func (s *ServiceSuite) TestGetCatalogEntryByISBNInvalid() {
	_, err := s.service.GetCatalogEntryByISBN(s.ctx, "not-an-isbn")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestUpdateCatalogEntry() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(s.cleanCodeEntry(), nil)
	s.catalog.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := s.service.UpdateCatalogEntry(s.ctx, UpdateCatalogEntryCommand{
		ISBN:   "9780132350884",
		Title:  "Clean Code, 2nd Edition",
		Author: "Robert C. Martin",
	})
	s.Require().NoError(err)
	s.Equal("Clean Code, 2nd Edition", entry.Title)
	s.Equal("Robert C. Martin", entry.Author)
}

func (s *ServiceSuite) TestUpdateCatalogEntryBlankTitleBeforeISBN() {
	// Title and author validation runs before the ISBN is parsed, so a
	// garbage ISBN paired with a blank title reports the blank title.
	_, err := s.service.UpdateCatalogEntry(s.ctx, UpdateCatalogEntryCommand{
		ISBN:   "not-an-isbn",
		Title:  "   ",
		Author: "Robert C. Martin",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.ErrorContains(err, "title cannot be blank")
}

func (s *ServiceSuite) TestUpdateCatalogEntryBlankAuthor() {
	_, err := s.service.UpdateCatalogEntry(s.ctx, UpdateCatalogEntryCommand{
		ISBN:   "9780132350884",
		Title:  "Clean Code",
		Author: "",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.ErrorContains(err, "author cannot be blank")
}

func (s *ServiceSuite) TestUpdateCatalogEntryNotFound() {
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.UpdateCatalogEntry(s.ctx, UpdateCatalogEntryCommand{
		ISBN:   "9780132350884",
		Title:  "Clean Code",
		Author: "Robert C. Martin",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateCatalogEntryUnchangedStillPersists() {
	existing := s.cleanCodeEntry()
	s.catalog.EXPECT().FindByISBN(gomock.Any(), testISBN).Return(existing, nil)
	s.catalog.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.CatalogEntry) error {
			s.Equal("Clean Code", entry.Title)
			return nil
		})

	entry, err := s.service.UpdateCatalogEntry(s.ctx, UpdateCatalogEntryCommand{
		ISBN:   "9780132350884",
		Title:  "Clean Code",
		Author: "Robert C. Martin",
	})
	s.Require().NoError(err)
	s.Equal("Clean Code", entry.Title)
}
