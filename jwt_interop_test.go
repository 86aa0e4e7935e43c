package crewauth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crewauth "github.com/harborline/go-crewauth"
)

// The codec is hand-rolled; golang-jwt acts as the interop oracle to
// prove the wire format is standard HS256.

func TestIssuedTokensVerifyUnderGolangJWT(t *testing.T) {
	ts := crewauth.NewTokenService(signingKey, 24, nil)
	token, err := ts.Generate(&crewauth.AdminAccount{
		Email: "ops@harborline.test",
		Role:  crewauth.RoleAdmin,
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ops@harborline.test", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestGolangJWTTokensVerifyUnderCodec(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops@harborline.test",
		"role": crewauth.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(signingKey)
	require.NoError(t, err)

	claims, ok := crewauth.DecodeClaims(token, signingKey)
	require.True(t, ok)
	assert.Equal(t, "ops@harborline.test", claims.Subject)
	assert.True(t, claims.IsAdmin())
}
