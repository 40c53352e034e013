package service

import (
	"context"
	"strings"

	"biblio/internal/lending/models"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

// GetCatalogEntryByISBN loads the bibliographic record for one ISBN.
func (s *Service) GetCatalogEntryByISBN(ctx context.Context, rawISBN string) (*models.CatalogEntry, error) {
	isbn, err := domain.ParseISBN(rawISBN)
	if err != nil {
		return nil, err
	}
	entry, err := s.catalog.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, wrapCatalogErr(err, isbn)
	}
	return entry, nil
}

// UpdateCatalogEntry replaces the title and author of an existing entry.
// Title and author are validated before the ISBN is parsed; both updates are
// no-ops when the value is unchanged.
func (s *Service) UpdateCatalogEntry(ctx context.Context, cmd UpdateCatalogEntryCommand) (*models.CatalogEntry, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "title cannot be blank")
	}
	if strings.TrimSpace(cmd.Author) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "author cannot be blank")
	}

	isbn, err := domain.ParseISBN(cmd.ISBN)
	if err != nil {
		return nil, err
	}

	var entry *models.CatalogEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, err := s.catalog.FindByISBN(txCtx, isbn)
		if err != nil {
			return wrapCatalogErr(err, isbn)
		}

		if err := e.UpdateTitle(cmd.Title); err != nil {
			return err
		}
		if err := e.UpdateAuthor(cmd.Author); err != nil {
			return err
		}

		if err := s.catalog.Update(txCtx, e); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update catalog entry")
		}

		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logInfo(ctx, "catalog entry updated", "isbn", isbn)
	return entry, nil
}
