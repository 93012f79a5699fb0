package util

import (
	"crypto/sha256"
	"fmt"
)

// MemoKey returns a deterministic storage key for a framed input with a short hash.
func MemoKey(prefix, op string, framed []byte) string {
	sum := sha256.Sum256(framed)
	return fmt.Sprintf("%s:%s:%x", prefix, op, sum[:8]) // prefix + ":" + op + ":" + first 16 hex chars
}
