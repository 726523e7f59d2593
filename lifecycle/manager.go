// Package lifecycle ensures a live, API-enabled Dash instance before any
// query runs. It owns the two-stage remediation ladder: launch Dash if
// its process is missing, then enable the API server if no live port can
// be discovered. Each remediation is attempted at most once per call, so
// worst-case latency stays bounded and a user-declined state is never
// retried in a loop.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashmcp"
)

// Settle defaults. Neither launching Dash nor flipping its API setting
// has a completion signal, so a fixed ceiling is waited out instead.
const (
	DefaultLaunchSettle = 4 * time.Second
	DefaultEnableSettle = 2 * time.Second
	DefaultPollInterval = 250 * time.Millisecond
)

// Ensure Manager implements dashmcp.ReadyChecker at compile time.
var _ dashmcp.ReadyChecker = (*Manager)(nil)

// Manager composes the app controller and port discoverer into the
// ready check. It is the only component that mutates OS state or blocks
// on settle waits.
type Manager struct {
	apps   dashmcp.AppController
	ports  dashmcp.PortDiscoverer
	logger *slog.Logger

	launchSettle time.Duration
	enableSettle time.Duration
	pollInterval time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithLaunchSettle sets the ceiling waited for Dash to come up after a
// launch. Defaults to DefaultLaunchSettle.
func WithLaunchSettle(d time.Duration) Option {
	return func(m *Manager) {
		m.launchSettle = d
	}
}

// WithEnableSettle sets the wait after writing the API server setting.
// Defaults to DefaultEnableSettle.
func WithEnableSettle(d time.Duration) Option {
	return func(m *Manager) {
		m.enableSettle = d
	}
}

// WithPollInterval sets how often the process check is re-run while
// waiting out the launch settle. Defaults to DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.pollInterval = d
	}
}

// NewManager creates a Manager.
func NewManager(apps dashmcp.AppController, ports dashmcp.PortDiscoverer, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		apps:         apps,
		ports:        ports,
		logger:       logger,
		launchSettle: DefaultLaunchSettle,
		enableSettle: DefaultEnableSettle,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnsureReady returns a working API base URL, remediating "not running"
// and "API disabled" states at most once each.
func (m *Manager) EnsureReady(ctx context.Context) (string, error) {
	if !m.apps.Running(ctx) {
		m.logger.Info("Dash is not running, launching it")
		if err := m.apps.Launch(ctx); err != nil {
			return "", err
		}
		if !m.waitRunning(ctx) {
			return "", dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Failed to launch the Dash application.")
		}
		m.logger.Info("Dash launched")
	}

	port, ok := m.ports.Discover(ctx)
	if !ok {
		m.logger.Info("Dash API Server is not enabled, attempting to enable it")
		if err := m.apps.EnableAPIServer(ctx); err == nil {
			m.sleep(ctx, m.enableSettle)
			port, ok = m.ports.Discover(ctx)
		} else {
			m.logger.Debug("enable attempt failed", "err", err)
		}
		if !ok {
			return "", dashmcp.Errorf(dashmcp.EUNAVAILABLE,
				"Failed to connect to the Dash API Server. Please ensure Dash is running and the API server is enabled (in Dash Settings > Integration).")
		}
		m.logger.Info("Dash API Server enabled")
	}

	return dashmcp.BaseURL(port), nil
}

// waitRunning polls the process check until it succeeds or the launch
// settle ceiling is reached. The total wait never exceeds the ceiling.
func (m *Manager) waitRunning(ctx context.Context) bool {
	deadline := time.Now().Add(m.launchSettle)
	for {
		if m.apps.Running(ctx) {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		wait := m.pollInterval
		if wait > remaining {
			wait = remaining
		}
		if !m.sleep(ctx, wait) {
			return false
		}
	}
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
