// Package commands defines the sheetfmt CLI, a client for sheetfmtd.
//
// Commands
//
//   - infos [name]              List formatters, or show one
//   - edit <selector>           Components, next component and samples
//   - format <selector> <v>...  Format values
//   - menu                      Sample selectors followed by presets
//   - samples <name>            A formatter's samples
//   - components <selector>     Text components of a pattern
//   - next <selector>           What may follow a pattern
//   - presets list|add|rm       Edit the local preset file
//
// # Implementation
//
// The root command loads the YAML config (SHEETFMT_* overrides apply),
// builds an HTTP client with a per-request timeout and renders results with
// fmter, so every listing supports -o table, json, yaml, csv, markdown and
// the other fmter formats.
package commands
