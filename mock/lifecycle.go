// Package mock provides hand-written test doubles for the dashmcp
// domain interfaces. Each mock exposes function fields so tests can
// substitute behavior per case, plus invocation counters where the
// at-most-once remediation guarantees need asserting.
package mock

import (
	"context"

	"github.com/fwojciec/dashmcp"
)

var (
	_ dashmcp.Prober         = (*Prober)(nil)
	_ dashmcp.PortDiscoverer = (*PortDiscoverer)(nil)
	_ dashmcp.AppController  = (*AppController)(nil)
	_ dashmcp.ReadyChecker   = (*ReadyChecker)(nil)
)

// Prober is a mock implementation of dashmcp.Prober.
type Prober struct {
	ProbeFn      func(ctx context.Context, baseURL string) bool
	ProbeInvoked int
}

func (p *Prober) Probe(ctx context.Context, baseURL string) bool {
	p.ProbeInvoked++
	return p.ProbeFn(ctx, baseURL)
}

// PortDiscoverer is a mock implementation of dashmcp.PortDiscoverer.
type PortDiscoverer struct {
	DiscoverFn      func(ctx context.Context) (int, bool)
	DiscoverInvoked int
}

func (d *PortDiscoverer) Discover(ctx context.Context) (int, bool) {
	d.DiscoverInvoked++
	return d.DiscoverFn(ctx)
}

// AppController is a mock implementation of dashmcp.AppController.
type AppController struct {
	RunningFn              func(ctx context.Context) bool
	RunningInvoked         int
	LaunchFn               func(ctx context.Context) error
	LaunchInvoked          int
	EnableAPIServerFn      func(ctx context.Context) error
	EnableAPIServerInvoked int
}

func (c *AppController) Running(ctx context.Context) bool {
	c.RunningInvoked++
	return c.RunningFn(ctx)
}

func (c *AppController) Launch(ctx context.Context) error {
	c.LaunchInvoked++
	return c.LaunchFn(ctx)
}

func (c *AppController) EnableAPIServer(ctx context.Context) error {
	c.EnableAPIServerInvoked++
	return c.EnableAPIServerFn(ctx)
}

// ReadyChecker is a mock implementation of dashmcp.ReadyChecker.
type ReadyChecker struct {
	EnsureReadyFn      func(ctx context.Context) (string, error)
	EnsureReadyInvoked int
}

func (c *ReadyChecker) EnsureReady(ctx context.Context) (string, error) {
	c.EnsureReadyInvoked++
	return c.EnsureReadyFn(ctx)
}
