package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	txcontext "biblio/pkg/platform/tx"
)

// PostgresStore persists physical copies in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed book store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// FindByID retrieves a copy by its identifier.
func (s *PostgresStore) FindByID(ctx context.Context, bookID domain.BookID) (*models.Book, error) {
	query := `
		SELECT id, isbn, borrower_id, borrowed_on
		FROM books
		WHERE id = $1
	`
	book, err := scanBook(s.execer(ctx).QueryRowContext(ctx, query, bookID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return book, nil
}

// FindAll returns every copy, ordered by identifier for stable listings.
func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Book, error) {
	query := `
		SELECT id, isbn, borrower_id, borrowed_on
		FROM books
		ORDER BY id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find all books: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var books []*models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// Create persists a new copy.
func (s *PostgresStore) Create(ctx context.Context, book *models.Book) error {
	if book == nil {
		return fmt.Errorf("book is required")
	}
	query := `
		INSERT INTO books (id, isbn, borrower_id, borrowed_on)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		book.ID.String(),
		book.ISBN.String(),
		nullBorrowerID(book.BorrowerID),
		nullTime(book.BorrowedOn),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("book already exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// Update persists changes to an existing copy.
func (s *PostgresStore) Update(ctx context.Context, book *models.Book) error {
	if book == nil {
		return fmt.Errorf("book is required")
	}
	query := `
		UPDATE books
		SET borrower_id = $2,
			borrowed_on = $3
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		book.ID.String(),
		nullBorrowerID(book.BorrowerID),
		nullTime(book.BorrowedOn),
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update book rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type bookRow interface {
	Scan(dest ...any) error
}

func scanBook(row bookRow) (*models.Book, error) {
	var (
		book       models.Book
		borrowerID sql.NullString
		borrowedOn sql.NullTime
	)
	if err := row.Scan(&book.ID, &book.ISBN, &borrowerID, &borrowedOn); err != nil {
		return nil, err
	}
	if borrowerID.Valid {
		id := domain.BorrowerID(borrowerID.String)
		book.BorrowerID = &id
	}
	if borrowedOn.Valid {
		t := borrowedOn.Time
		book.BorrowedOn = &t
	}
	return &book, nil
}

func nullBorrowerID(id *domain.BorrowerID) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
