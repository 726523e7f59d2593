// Package macos drives the Dash application through macOS command-line
// tools: pgrep for process detection, open for launching, and defaults
// for writing the API server preference.
package macos

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/fwojciec/dashmcp"
)

// Dash ships under two bundle identifiers; the Setapp build uses its own.
// Both are tried wherever a bundle identifier is needed.
const (
	BundleDash   = "com.kapeli.dashdoc"
	BundleSetapp = "com.kapeli.dash-setapp"

	apiServerKey = "DHAPIServerEnabled"

	// processPattern matches the Dash process via pgrep -f.
	processPattern = "Dash"
)

// DefaultCommandTimeout bounds each spawned command.
const DefaultCommandTimeout = 10 * time.Second

// Ensure AppController implements dashmcp.AppController at compile time.
var _ dashmcp.AppController = (*AppController)(nil)

// runFunc executes a command and returns its error status. Tests swap it
// out to avoid touching the real OS.
type runFunc func(ctx context.Context, name string, args ...string) error

// AppController implements dashmcp.AppController on top of macOS
// command-line tools.
type AppController struct {
	run     runFunc
	timeout time.Duration
	logger  *slog.Logger
}

// AppOption configures an AppController.
type AppOption func(*AppController)

// WithCommandTimeout sets the per-command timeout.
// Defaults to DefaultCommandTimeout.
func WithCommandTimeout(d time.Duration) AppOption {
	return func(c *AppController) {
		c.timeout = d
	}
}

// withRunner substitutes the command runner; used by tests.
func withRunner(run runFunc) AppOption {
	return func(c *AppController) {
		c.run = run
	}
}

// NewAppController creates an AppController.
func NewAppController(logger *slog.Logger, opts ...AppOption) *AppController {
	c := &AppController{
		timeout: DefaultCommandTimeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.run == nil {
		c.run = execRun
	}
	return c
}

func execRun(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Running reports whether a Dash process exists. pgrep exits non-zero
// when nothing matches, so any error means "not running".
func (c *AppController) Running(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.run(ctx, "pgrep", "-f", processPattern)
	return err == nil
}

// Launch starts Dash in the background without stealing focus (-g) or
// opening a new window (-j), trying the Setapp bundle if the direct
// build isn't installed.
func (c *AppController) Launch(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.run(ctx, "open", "-g", "-j", "-b", BundleDash)
	if err == nil {
		return nil
	}
	c.logger.Debug("launch via direct bundle failed, trying Setapp", "err", err)

	if err := c.run(ctx, "open", "-g", "-j", "-b", BundleSetapp); err != nil {
		return dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Failed to launch the Dash application: %v", err)
	}
	return nil
}

// EnableAPIServer writes the API server preference for both bundle
// identifiers. Writing to a bundle that isn't installed is harmless, so
// both writes always run.
func (c *AppController) EnableAPIServer(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var firstErr error
	for _, bundle := range []string{BundleDash, BundleSetapp} {
		if err := c.run(ctx, "defaults", "write", bundle, apiServerKey, "YES"); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("writing %s for %s: %w", apiServerKey, bundle, err)
		}
	}
	if firstErr != nil {
		return dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Failed to enable the Dash API Server: %v", firstErr)
	}
	return nil
}
