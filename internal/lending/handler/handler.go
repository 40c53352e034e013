package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"biblio/internal/lending/models"
	"biblio/internal/lending/service"
	"biblio/pkg/platform/httputil"
	"biblio/pkg/requestcontext"
)

// Service defines the lending operations the HTTP layer depends on.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	RegisterBorrower(ctx context.Context, cmd service.RegisterBorrowerCommand) (*models.Borrower, error)
	ListBorrowers(ctx context.Context) ([]*models.Borrower, error)
	RegisterBook(ctx context.Context, cmd service.RegisterBookCommand) (*models.BookDetails, error)
	ListBooks(ctx context.Context) ([]models.BookDetails, error)
	BorrowBook(ctx context.Context, cmd service.BorrowBookCommand) (*models.BookDetails, error)
	ReturnBook(ctx context.Context, cmd service.ReturnBookCommand) (*models.BookDetails, error)
	GetCatalogEntryByISBN(ctx context.Context, rawISBN string) (*models.CatalogEntry, error)
	UpdateCatalogEntry(ctx context.Context, cmd service.UpdateCatalogEntryCommand) (*models.CatalogEntry, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/borrowers", h.HandleRegisterBorrower)
	r.Get("/borrowers", h.HandleListBorrowers)
	r.Post("/books", h.HandleRegisterBook)
	r.Get("/books", h.HandleListBooks)
	r.Post("/books/{id}/borrow", h.HandleBorrowBook)
	r.Post("/books/{id}/return", h.HandleReturnBook)
	r.Get("/catalog/{isbn}", h.HandleGetCatalogEntry)
	r.Put("/catalog/{isbn}", h.HandleUpdateCatalogEntry)
}

// HandleRegisterBorrower registers a new borrower.
func (h *Handler) HandleRegisterBorrower(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterBorrowerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	borrower, err := h.service.RegisterBorrower(ctx, service.RegisterBorrowerCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "register borrower failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBorrowerResponse(borrower))
}

// HandleListBorrowers returns all registered borrowers.
func (h *Handler) HandleListBorrowers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	borrowers, err := h.service.ListBorrowers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list borrowers failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	resp := make([]*BorrowerResponse, 0, len(borrowers))
	for _, b := range borrowers {
		resp = append(resp, toBorrowerResponse(b))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleRegisterBook registers a physical copy, creating the catalog entry
// for its ISBN on first registration.
func (h *Handler) HandleRegisterBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterBookRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.RegisterBook(ctx, service.RegisterBookCommand{
		ISBN:   req.ISBN,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "register book failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBookDetailsResponse(details))
}

// HandleListBooks returns every copy with its catalog entry and loan state.
func (h *Handler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	details, err := h.service.ListBooks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list books failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	resp := make([]*BookDetailsResponse, 0, len(details))
	for i := range details {
		resp = append(resp, toBookDetailsResponse(&details[i]))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleBorrowBook lends the copy in the path to the borrower in the body.
// The service resolves both IDs so a missing book is reported before a
// missing borrower.
func (h *Handler) HandleBorrowBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[LoanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.BorrowBook(ctx, service.BorrowBookCommand{
		BookID:     bookID,
		BorrowerID: req.BorrowerID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "borrow book failed", "error", err, "request_id", requestID, "book_id", bookID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBookDetailsResponse(details))
}

// HandleReturnBook takes the copy in the path back from the borrower in
// the body.
func (h *Handler) HandleReturnBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookID := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[LoanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.ReturnBook(ctx, service.ReturnBookCommand{
		BookID:     bookID,
		BorrowerID: req.BorrowerID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "return book failed", "error", err, "request_id", requestID, "book_id", bookID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBookDetailsResponse(details))
}

// HandleGetCatalogEntry returns the bibliographic record for an ISBN.
func (h *Handler) HandleGetCatalogEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	isbn := chi.URLParam(r, "isbn")

	entry, err := h.service.GetCatalogEntryByISBN(ctx, isbn)
	if err != nil {
		h.logger.ErrorContext(ctx, "get catalog entry failed", "error", err, "request_id", requestID, "isbn", isbn)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCatalogEntryResponse(entry))
}

// HandleUpdateCatalogEntry replaces the title and author of an entry.
func (h *Handler) HandleUpdateCatalogEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	isbn := chi.URLParam(r, "isbn")

	req, ok := httputil.DecodeAndPrepare[UpdateCatalogEntryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	entry, err := h.service.UpdateCatalogEntry(ctx, service.UpdateCatalogEntryCommand{
		ISBN:   isbn,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "update catalog entry failed", "error", err, "request_id", requestID, "isbn", isbn)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCatalogEntryResponse(entry))
}
