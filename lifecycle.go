package dashmcp

import (
	"context"
	"fmt"
)

// BaseURL returns the API base URL for a discovered port.
// Dash's API server only binds to the loopback interface.
func BaseURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// Prober answers whether an API endpoint is accepting and healthy.
type Prober interface {
	// Probe issues a lightweight liveness request against baseURL.
	// It returns true only on a success-class response; transport
	// errors, timeouts, and non-success statuses all yield false.
	// It never returns an error.
	Probe(ctx context.Context, baseURL string) bool
}

// PortDiscoverer locates the current API port. The port is re-read on
// every call and never cached: Dash may restart on a different port
// between invocations.
type PortDiscoverer interface {
	// Discover returns the live API port. ok is false when no port is
	// configured or the configured port fails its health probe, an
	// expected outcome rather than an error.
	Discover(ctx context.Context) (port int, ok bool)
}

// AppController drives the Dash application through OS capabilities.
// It is the only abstraction permitted to mutate OS-level state.
type AppController interface {
	// Running reports whether a Dash process exists.
	Running(ctx context.Context) bool

	// Launch starts the Dash application in the background.
	Launch(ctx context.Context) error

	// EnableAPIServer writes the setting that turns on Dash's API
	// server. Dash picks the change up on its own after a short delay.
	EnableAPIServer(ctx context.Context) error
}

// ReadyChecker guarantees a live, API-enabled Dash instance.
type ReadyChecker interface {
	// EnsureReady returns a working API base URL, launching Dash and
	// enabling its API server if needed. Each remediation is attempted
	// at most once per call; when both fail the returned error carries
	// manual remediation instructions.
	EnsureReady(ctx context.Context) (baseURL string, err error)
}
