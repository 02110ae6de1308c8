package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 16 bytes (32 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:16])
}

// ETag returns a strong entity tag for a response body.
func ETag(body []byte) string { return `"` + Fingerprint(body) + `"` }
