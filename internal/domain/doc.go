// Package domain defines the formatter DTOs and the contracts between the
// HTTP layer, the façade service and the formatting provider.
// It contains plain types (wire values) and contracts (interfaces) only.
package domain
