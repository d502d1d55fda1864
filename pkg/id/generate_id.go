package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for every public identifier: debts, payments, goals, contributions, transactions.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsHex32 reports whether s has the shape produced by NewID32.
// User ids handed over by the auth layer share this shape.
func IsHex32(s string) bool { return reHex32.MatchString(s) }
