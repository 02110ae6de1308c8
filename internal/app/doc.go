// Package app wires application dependencies for sheetfmtd and the CLI.
//
// Config is loaded from YAML with SHEETFMT_* environment overrides. NewWire
// builds the provider, preset store, service and HTTP handler for the
// server; App bundles the HTTP client and preset store commands use.
package app
