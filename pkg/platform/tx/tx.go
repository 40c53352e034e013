// Package tx carries a database transaction through a context so stores can
// participate in a transaction opened by the service layer without depending
// on database/sql in their interfaces.
package tx

import (
	"context"
	"database/sql"
)

type contextKeyTx struct{}

// WithTx returns a context carrying the given transaction.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, contextKeyTx{}, tx)
}

// From extracts the transaction from the context, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(contextKeyTx{}).(*sql.Tx)
	return tx, ok
}
