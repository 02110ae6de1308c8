// Package main runs sheetfmtd, the HTTP server behind the sheetfmt CLI and
// spreadsheet editors. See package httpapi for the endpoints.
//
// Behaviour
//
//   - Formatters are built in and stateless; only menu presets live on disk
//     (presets in the config, default ~/.sheetfmt/presets.json).
//   - Accept-Language selects the formatting locale among the configured
//     locales; the first is the fallback.
//   - Logs are structured (zap), JSON by default, one line per request.
//   - SIGINT or SIGTERM drains in-flight requests within shutdown_timeout.
//   - The default listen address is :8080; SHEETFMT_* variables override
//     the YAML config.
package main
