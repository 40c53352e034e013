package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	txcontext "biblio/pkg/platform/tx"
)

// PostgresStore persists catalog entries in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed catalog entry store.
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

// FindByISBN retrieves a catalog entry by its normalized ISBN.
func (s *PostgresStore) FindByISBN(ctx context.Context, isbn domain.ISBN) (*models.CatalogEntry, error) {
	query := `
		SELECT isbn, title, author
		FROM catalog_entries
		WHERE isbn = $1
	`
	var entry models.CatalogEntry
	err := s.execer(ctx).QueryRowContext(ctx, query, isbn.String()).
		Scan(&entry.ISBN, &entry.Title, &entry.Author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find catalog entry by isbn: %w", err)
	}
	return &entry, nil
}

// FindByISBNs retrieves catalog entries for a batch of ISBNs.
// Missing ISBNs are simply absent from the result map.
func (s *PostgresStore) FindByISBNs(ctx context.Context, isbns []domain.ISBN) (map[domain.ISBN]*models.CatalogEntry, error) {
	result := make(map[domain.ISBN]*models.CatalogEntry, len(isbns))
	if len(isbns) == 0 {
		return result, nil
	}

	raw := make([]string, len(isbns))
	for i, isbn := range isbns {
		raw[i] = isbn.String()
	}

	query := `
		SELECT isbn, title, author
		FROM catalog_entries
		WHERE isbn = ANY($1)
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, raw)
	if err != nil {
		return nil, fmt.Errorf("find catalog entries by isbns: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	for rows.Next() {
		var entry models.CatalogEntry
		if err := rows.Scan(&entry.ISBN, &entry.Title, &entry.Author); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		result[entry.ISBN] = &entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog entries: %w", err)
	}
	return result, nil
}

// Create persists a new catalog entry.
func (s *PostgresStore) Create(ctx context.Context, entry *models.CatalogEntry) error {
	if entry == nil {
		return fmt.Errorf("catalog entry is required")
	}
	query := `
		INSERT INTO catalog_entries (isbn, title, author)
		VALUES ($1, $2, $3)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		entry.ISBN.String(),
		entry.Title,
		entry.Author,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("catalog entry already exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create catalog entry: %w", err)
	}
	return nil
}

// Update persists changes to an existing catalog entry.
func (s *PostgresStore) Update(ctx context.Context, entry *models.CatalogEntry) error {
	if entry == nil {
		return fmt.Errorf("catalog entry is required")
	}
	query := `
		UPDATE catalog_entries
		SET title = $2,
			author = $3
		WHERE isbn = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		entry.ISBN.String(),
		entry.Title,
		entry.Author,
	)
	if err != nil {
		return fmt.Errorf("update catalog entry: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update catalog entry rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
