// Package database holds the process-wide connection provider shared by the
// HTTP handlers.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnavailable is returned when the engine was never created or failed its startup probe.
var ErrUnavailable = errors.New("database engine not available")

const probeTimeout = 5 * time.Second

// Provider owns the long-lived engine and hands out one scoped connection per call.
type Provider struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProvider probes db once. When openErr is set or the probe fails the error
// is logged and the provider is returned without an engine, so the process can
// keep serving and report 503 per request.
func NewProvider(ctx context.Context, db *gorm.DB, openErr error, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{logger: logger}

	if openErr != nil {
		logger.Error("failed to create database engine", zap.Error(openErr))
		return p
	}
	if db == nil {
		logger.Error("failed to create database engine", zap.Error(ErrUnavailable))
		return p
	}
	if err := Probe(ctx, db); err != nil {
		logger.Error("initial database probe failed", zap.Error(err))
		return p
	}

	logger.Info("database connection established", zap.String("dialect", db.Dialector.Name()))
	p.db = db
	return p
}

// Probe pings the engine with a bounded timeout.
func Probe(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Available reports whether the engine passed its startup probe.
func (p *Provider) Available() bool {
	return p != nil && p.db != nil
}

// WithConnection runs fn on a dedicated connection taken from the pool.
// The connection goes back to the pool on every exit path of fn, panics included.
func (p *Provider) WithConnection(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if !p.Available() {
		return ErrUnavailable
	}
	return p.db.WithContext(ctx).Connection(fn)
}

// Close releases the engine. Calling it on an unavailable provider is a no-op.
func (p *Provider) Close() error {
	if !p.Available() {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
