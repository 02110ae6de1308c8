// Package httpapi serves a FormatterService over HTTP.
//
// HTTP API
//
//	GET /api/formatter
//	    List every formatter as {url, name}.
//
//	GET /api/formatter/{name}
//	    Return the info for {name}, or 404.
//
//	POST /api/formatter/*/edit "<name> <pattern>"
//	    Parse the selector and return its components, next component and
//	    samples. Failures are reported in the message field, never as a status.
//
//	POST /api/formatter/*/format [{selector, value}, ...]
//	    Format each value; result i belongs to request i and carries either
//	    text or error.
//
//	GET /api/formatter/*/menu
//	    Return the sample selectors of every formatter followed by presets.
//
//	GET /api/formatter/{name}/samples
//	GET /api/formatter/{name}/text-components?text=
//	GET /api/formatter/{name}/next-text-component?text=
//	    Per-formatter views. next-text-component returns null when the
//	    pattern is complete.
//
//	GET /healthz
//
// Behaviour
//
//   - Bodies must be application/json (415) and fit in MaxBodyBytes (413).
//   - Accept must admit application/json (406).
//   - Accept-Language picks the formatting locale among Options.Locales.
//   - GET responses carry an ETag and honour If-None-Match.
//   - Every request gets an X-Request-Id and an access log line.
package httpapi
