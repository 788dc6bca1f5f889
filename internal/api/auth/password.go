package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash digests a password to a 64-character hex string. The scheme is
// deliberately deterministic and unsalted: login compares Hash(input) against
// the stored digest. Adding per-user salt is a known open requirement decision
// and must not be slipped in here.
func Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
