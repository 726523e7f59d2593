// Package slog provides logging decorators for dashmcp domain
// interfaces. The decorators are advisory only: wrapping or not
// wrapping a component never changes behavior.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashmcp"
	"github.com/google/uuid"
)

// Ensure LoggingReadyChecker implements dashmcp.ReadyChecker.
var _ dashmcp.ReadyChecker = (*LoggingReadyChecker)(nil)

// LoggingReadyChecker wraps a ReadyChecker with per-call logging. Each
// call gets a unique operation ID so the lifecycle ladder's steps can be
// correlated across concurrent invocations.
type LoggingReadyChecker struct {
	next   dashmcp.ReadyChecker
	logger *slog.Logger
}

// NewLoggingReadyChecker creates a new LoggingReadyChecker.
func NewLoggingReadyChecker(next dashmcp.ReadyChecker, logger *slog.Logger) *LoggingReadyChecker {
	return &LoggingReadyChecker{next: next, logger: logger}
}

// EnsureReady delegates to the wrapped checker and logs the outcome.
func (c *LoggingReadyChecker) EnsureReady(ctx context.Context) (baseURL string, err error) {
	op := uuid.NewString()
	defer func(begin time.Time) {
		c.logger.Debug("lifecycle check",
			"op", op,
			"base_url", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.EnsureReady(ctx)
}
