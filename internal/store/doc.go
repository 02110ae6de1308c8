// Package store provides file-based persistence for formatter menu presets.
//
// Presets are user-defined labelled selectors appended to the formatter
// menu. They are serialised as a JSON array in one file and written
// atomically via a temp file and rename. All methods are concurrency-safe
// via internal locking.
package store
