package crewauth

import (
	"crypto/hmac"
	"crypto/sha256"
)

// hmacSign computes the HMAC-SHA256 tag of msg under key. Deterministic
// for a given (msg, key) pair; a single shared key signs and verifies.
func hmacSign(msg, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
