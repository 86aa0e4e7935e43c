package crewauth

import (
	"crypto/hmac"
	"encoding/json"
	"strings"
	"time"
)

const (
	algHS256 = "HS256"
	typJWT   = "JWT"
)

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// EncodeToken serializes payload as the second segment of an HS256 token:
// base64url(header) + "." + base64url(payload) + "." + base64url(signature).
// It fails only when the payload cannot be marshaled to JSON.
func EncodeToken(payload any, signingKey []byte) (string, error) {
	headerJSON, err := json.Marshal(tokenHeader{Alg: algHS256, Typ: typJWT})
	if err != nil {
		return "", err
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	signingInput := b64encode(headerJSON) + "." + b64encode(payloadJSON)
	sig := hmacSign([]byte(signingInput), signingKey)

	return signingInput + "." + b64encode(sig), nil
}

// DecodeToken verifies the signature of a wire token and returns the raw
// payload JSON. The second result is false for any token that is not three
// dot-separated segments or whose signature does not match; malformed and
// tampered tokens are indistinguishable to the caller. No error is ever
// returned for bad input, and the expiry claim is not inspected here --
// that is the guard's responsibility.
func DecodeToken(token string, signingKey []byte) ([]byte, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, false
	}

	signingInput := parts[0] + "." + parts[1]
	want := hmacSign([]byte(signingInput), signingKey)
	if !hmac.Equal(want, b64decode(parts[2])) {
		return nil, false
	}

	payload := b64decode(parts[1])
	if !json.Valid(payload) {
		return nil, false
	}

	return payload, true
}

// DecodeClaims verifies a token and unmarshals its payload into
// TokenClaims. Same sentinel semantics as DecodeToken.
func DecodeClaims(token string, signingKey []byte) (*TokenClaims, bool) {
	payload, ok := DecodeToken(token, signingKey)
	if !ok {
		return nil, false
	}

	claims := &TokenClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, false
	}

	return claims, true
}

// TokenService issues and validates admin bearer tokens under a single
// shared signing key.
type TokenService struct {
	signingKey      []byte
	tokenExpiration int
	logger          Logger
}

// NewTokenService creates a TokenService. tokenExpiration is in hours; a
// non-positive value falls back to 24.
func NewTokenService(signingKey []byte, tokenExpiration int, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	if tokenExpiration <= 0 {
		tokenExpiration = 24
	}
	return &TokenService{
		signingKey:      signingKey,
		tokenExpiration: tokenExpiration,
		logger:          logger,
	}
}

// Generate issues a token for an admin account with the configured TTL.
func (ts *TokenService) Generate(account *AdminAccount) (string, error) {
	if len(ts.signingKey) == 0 {
		return "", ErrMissingSigningKey
	}

	claims := &TokenClaims{
		Subject: account.Email,
		Role:    account.Role,
		Expiry:  time.Now().Add(time.Duration(ts.tokenExpiration) * time.Hour).Unix(),
	}

	return EncodeToken(claims, ts.signingKey)
}

// Validate checks a wire token's signature and decodes its claims.
func (ts *TokenService) Validate(token string) (*TokenClaims, bool) {
	claims, ok := DecodeClaims(token, ts.signingKey)
	if !ok {
		ts.logger.Debug("token validation failed")
		return nil, false
	}
	return claims, true
}
