package crewauth

import "encoding/base64"

// b64encode encodes raw bytes with the base64url alphabet, no padding.
func b64encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// b64decode is the tolerant inverse of b64encode. Malformed input yields
// whatever bytes decode before the first bad character; garbage in,
// garbage out. The token codec relies on downstream JSON parsing (or the
// signature check) to reject the result, so no error surfaces here.
func b64decode(s string) []byte {
	b, _ := base64.RawURLEncoding.DecodeString(s)
	return b
}
