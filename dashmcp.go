// Package dashmcp exposes Dash's local documentation (installed docsets,
// search, and full page content) to AI agents over the Model Context
// Protocol. It connects to Dash's local HTTP API, recovering automatically
// when Dash isn't running or its API server is disabled, and converts
// fetched documentation pages to clean Markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, macos/).
package dashmcp
