// Package fs provides filesystem-based implementations, currently the
// port discoverer that reads Dash's API server status file.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/dashmcp"
)

// Ensure StatusDiscoverer implements dashmcp.PortDiscoverer at compile time.
var _ dashmcp.PortDiscoverer = (*StatusDiscoverer)(nil)

// DefaultStatusPath returns the well-known location of Dash's API server
// status file.
func DefaultStatusPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", "Dash", ".dash_api_server", "status.json"), nil
}

// StatusDiscoverer reads the API port from Dash's status file and
// confirms it is live before returning it. The file is re-read on every
// call: it outlives Dash sessions, so a port found on disk may belong to
// a previous run and must never be trusted without a probe.
type StatusDiscoverer struct {
	path   string
	prober dashmcp.Prober
}

// NewStatusDiscoverer creates a StatusDiscoverer for the given status
// file path.
func NewStatusDiscoverer(path string, prober dashmcp.Prober) *StatusDiscoverer {
	return &StatusDiscoverer{path: path, prober: prober}
}

// Discover returns the live API port. A missing file, unreadable JSON, a
// missing or non-positive port field, and a port that fails its health
// probe all yield ok=false; these are expected states, not errors.
func (d *StatusDiscoverer) Discover(ctx context.Context) (int, bool) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return 0, false
	}

	var status struct {
		Port *int `json:"port"`
	}
	if err := json.Unmarshal(data, &status); err != nil {
		return 0, false
	}
	if status.Port == nil || *status.Port <= 0 {
		return 0, false
	}

	if !d.prober.Probe(ctx, dashmcp.BaseURL(*status.Port)) {
		return 0, false
	}
	return *status.Port, true
}
