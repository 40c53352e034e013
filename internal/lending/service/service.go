// Package service orchestrates the lending use cases: registering borrowers
// and copies, lending and returning, and the catalog read/update flows. Each
// command runs inside one StoreTx boundary; validation failures and domain
// conflicts abort before anything is staged.
package service

import (
	"context"
	"log/slog"

	lendingmetrics "biblio/internal/lending/metrics"
)

// Service orchestrates lending commands and queries against the stores.
type Service struct {
	catalog   CatalogEntryStore
	books     BookStore
	borrowers BorrowerStore
	idgen     IDGenerator
	metrics   *lendingmetrics.Metrics
	logger    *slog.Logger
	tx        StoreTx
}

func New(catalog CatalogEntryStore, books BookStore, borrowers BorrowerStore, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	tx := cfg.tx
	if tx == nil {
		tx = newInMemoryStoreTx()
	}
	idgen := cfg.idgen
	if idgen == nil {
		idgen = uuidGenerator{}
	}
	return &Service{
		catalog:   catalog,
		books:     books,
		borrowers: borrowers,
		idgen:     idgen,
		metrics:   cfg.metrics,
		logger:    cfg.logger,
		tx:        tx,
	}
}

// logInfo records a command outcome when a logger is configured. Failures
// are logged by the transport layer alongside the request ID.
func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}
