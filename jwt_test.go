package crewauth_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crewauth "github.com/harborline/go-crewauth"
)

var signingKey = []byte("test-signing-key")

// buildRawToken assembles a signed token from raw header/payload strings
// using an independent reimplementation of the wire format, so codec
// bugs cannot cancel out.
func buildRawToken(t *testing.T, header, payload string, key []byte) string {
	t.Helper()

	enc := func(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

	signingInput := enc([]byte(header)) + "." + enc([]byte(payload))
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(signingInput))

	return signingInput + "." + enc(mac.Sum(nil))
}

func TestEncodeTokenWireFormat(t *testing.T) {
	token, err := crewauth.EncodeToken(map[string]any{"sub": "ops@harborline.test"}, signingKey)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.NotEmpty(t, part)
		assert.False(t, strings.ContainsAny(part, "+/="), "segment %q not base64url", part)
	}
}

func TestDecodeTokenRoundTrip(t *testing.T) {
	payloads := []any{
		map[string]any{"sub": "ops@harborline.test", "role": "admin"},
		map[string]any{"nested": map[string]any{"a": float64(1)}},
		&crewauth.TokenClaims{Subject: "ops@harborline.test", Role: "admin", Expiry: 1700000000},
	}

	for _, payload := range payloads {
		token, err := crewauth.EncodeToken(payload, signingKey)
		require.NoError(t, err)

		raw, ok := crewauth.DecodeToken(token, signingKey)
		require.True(t, ok)

		want, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(raw))
	}
}

func TestDecodeTokenRejectsTampering(t *testing.T) {
	token, err := crewauth.EncodeToken(&crewauth.TokenClaims{
		Subject: "ops@harborline.test",
		Role:    "admin",
		Expiry:  time.Now().Add(time.Hour).Unix(),
	}, signingKey)
	require.NoError(t, err)

	// Flip one character at a spread of positions across all three
	// segments; every mutation must invalidate the token. The final
	// character of a segment is skipped: base64 ignores its trailing
	// bits, so some flips there decode to identical bytes.
	for pos := 0; pos < len(token); pos += 3 {
		if token[pos] == '.' {
			continue
		}
		if pos+1 == len(token) || token[pos+1] == '.' {
			continue
		}
		flipped := byte('A')
		if token[pos] == 'A' {
			flipped = 'B'
		}
		mutated := token[:pos] + string(flipped) + token[pos+1:]

		_, ok := crewauth.DecodeToken(mutated, signingKey)
		assert.False(t, ok, "mutation at %d accepted", pos)
	}
}

func TestDecodeTokenRejectsWrongSecret(t *testing.T) {
	token, err := crewauth.EncodeToken(map[string]any{"sub": "x"}, signingKey)
	require.NoError(t, err)

	_, ok := crewauth.DecodeToken(token, []byte("some-other-key"))
	assert.False(t, ok)
}

func TestDecodeTokenMalformedInputs(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "notatoken"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"garbage segments", "!!!.???.###"},
		{"empty segments", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := crewauth.DecodeToken(tt.token, signingKey)
			assert.False(t, ok)
			assert.Nil(t, payload)
		})
	}
}

func TestDecodeTokenRejectsNonJSONPayload(t *testing.T) {
	// Correctly signed token whose payload segment is not JSON.
	header := `{"alg":"HS256","typ":"JWT"}`
	token := buildRawToken(t, header, "this is not json", signingKey)

	_, ok := crewauth.DecodeToken(token, signingKey)
	assert.False(t, ok)
}

func TestDecodeClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Unix()
	token, err := crewauth.EncodeToken(&crewauth.TokenClaims{
		Subject: "ops@harborline.test",
		Role:    crewauth.RoleAdmin,
		Expiry:  expiry,
	}, signingKey)
	require.NoError(t, err)

	claims, ok := crewauth.DecodeClaims(token, signingKey)
	require.True(t, ok)
	assert.Equal(t, "ops@harborline.test", claims.Subject)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, expiry, claims.Expiry)
	assert.False(t, claims.ExpiredAt(time.Now()))
	assert.True(t, claims.ExpiredAt(time.Unix(expiry+1, 0)))
}

func TestTokenServiceGenerateAndValidate(t *testing.T) {
	ts := crewauth.NewTokenService(signingKey, 24, nil)

	account := &crewauth.AdminAccount{
		Email: "ops@harborline.test",
		Role:  crewauth.RoleAdmin,
	}

	token, err := ts.Generate(account)
	require.NoError(t, err)

	claims, ok := ts.Validate(token)
	require.True(t, ok)
	assert.Equal(t, account.Email, claims.Subject)
	assert.Equal(t, crewauth.RoleAdmin, claims.Role)

	// TTL lands about 24h out.
	expires := claims.Expires()
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expires, time.Minute)
}

func TestTokenServiceMissingKey(t *testing.T) {
	ts := crewauth.NewTokenService(nil, 24, nil)

	_, err := ts.Generate(&crewauth.AdminAccount{Email: "x", Role: crewauth.RoleAdmin})
	assert.ErrorIs(t, err, crewauth.ErrMissingSigningKey)
}
