// Package digest derives short content fingerprints used as HTTP entity tags.
package digest
