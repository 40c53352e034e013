package service

import (
	"log/slog"

	lendingmetrics "biblio/internal/lending/metrics"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *lendingmetrics.Metrics
	idgen   IDGenerator
	tx      StoreTx
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *lendingmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(c *serviceConfig) {
		c.idgen = g
	}
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}
