package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns an opaque loan identifier: 32 lowercase hex characters,
// no separators or prefixes. Ids are random and never reused.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
