package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "biblio/pkg/domain-errors"
	txcontext "biblio/pkg/platform/tx"
)

const defaultLendingTxTimeout = 5 * time.Second

// lendingPostgresTx runs lending commands inside one database transaction.
// The *sql.Tx travels in the context; the stores pick it up via their
// execer helper.
type lendingPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newLendingPostgresTx(db *sql.DB) *lendingPostgresTx {
	return &lendingPostgresTx{db: db}
}

func (t *lendingPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	// Nested call: join the transaction already in flight.
	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultLendingTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is no-op; error already captured
	}()

	txCtx := txcontext.WithTx(ctx, tx)
	if err := fn(txCtx); err != nil {
		return err
	}

	return tx.Commit()
}
