// Package client provides an HTTP implementation of the
// domain.FormatterClient interface used by the sheetfmt CLI.
//
// Every call takes a context for cancellation and deadlines. Non-2xx
// statuses are returned as *domain.OpError values whose text carries the
// HTTP method, full URL, status and the server's message; 404, 400, 415 and
// 406 map to the matching error kinds.
package client
