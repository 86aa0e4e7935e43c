package crewauth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/scrypt"
)

// scrypt(16384,8,1) keeps a single verification in the tens of
// milliseconds on current hardware; the latency is the point.
const (
	saltSize       = 16
	scryptHashSize = 64
	scryptN        = 16384
	scryptR        = 8
	scryptP        = 1
)

// GenerateSalt returns a fresh random salt, hex-encoded for storage.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword derives the stored credential hash from a plaintext
// password and a hex-encoded salt. Output is hex-encoded.
func HashPassword(password, saltHex string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", err
	}

	dk, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptHashSize)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(dk), nil
}

// VerifyPassword recomputes the hash with the stored salt and compares it
// to the stored hash in constant time.
func VerifyPassword(password, saltHex, hashHex string) bool {
	derived, err := HashPassword(password, saltHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hashHex)) == 1
}
