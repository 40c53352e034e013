package borrower

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

// PostgresStore persists borrowers in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed borrower store.
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

// FindByID retrieves a borrower by identifier.
func (s *PostgresStore) FindByID(ctx context.Context, borrowerID domain.BorrowerID) (*models.Borrower, error) {
	query := `
		SELECT id, name, email
		FROM borrowers
		WHERE id = $1
	`
	var borrower models.Borrower
	err := s.execer(ctx).QueryRowContext(ctx, query, borrowerID.String()).
		Scan(&borrower.ID, &borrower.Name, &borrower.EmailAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find borrower by id: %w", err)
	}
	return &borrower, nil
}

// FindAll returns every borrower, ordered by identifier for stable listings.
func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Borrower, error) {
	query := `
		SELECT id, name, email
		FROM borrowers
		ORDER BY id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find all borrowers: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var borrowers []*models.Borrower
	for rows.Next() {
		var borrower models.Borrower
		if err := rows.Scan(&borrower.ID, &borrower.Name, &borrower.EmailAddress); err != nil {
			return nil, fmt.Errorf("scan borrower: %w", err)
		}
		borrowers = append(borrowers, &borrower)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate borrowers: %w", err)
	}
	return borrowers, nil
}

// ExistsByEmail reports whether any borrower is registered with the
// normalized email address.
func (s *PostgresStore) ExistsByEmail(ctx context.Context, email domain.EmailAddress) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM borrowers WHERE email = $1)`, email.String()).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("borrower exists by email: %w", err)
	}
	return exists, nil
}

// Create persists a new borrower. The unique index on email turns a
// concurrent duplicate registration into sentinel.ErrAlreadyUsed.
func (s *PostgresStore) Create(ctx context.Context, borrower *models.Borrower) error {
	if borrower == nil {
		return fmt.Errorf("borrower is required")
	}
	query := `
		INSERT INTO borrowers (id, name, email)
		VALUES ($1, $2, $3)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		borrower.ID.String(),
		borrower.Name,
		borrower.EmailAddress.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("borrower email must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create borrower: %w", err)
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
