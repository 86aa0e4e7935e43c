package crewauth

import (
	"os"
	"strconv"
)

// Config holds auth options. It is built once at startup and handed to
// the components that need it; nothing in this package reads the process
// environment at call time.
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetBootstrapEmail() string
	GetBootstrapPassword() string
}

// SimpleConfig is a value implementation of Config.
type SimpleConfig struct {
	SigningKey        string
	TokenExpiration   int
	BootstrapEmail    string
	BootstrapPassword string
}

var _ Config = SimpleConfig{}

func (c SimpleConfig) GetSigningKey() string { return c.SigningKey }

// GetTokenExpiration is the issued-token TTL in hours.
func (c SimpleConfig) GetTokenExpiration() int { return c.TokenExpiration }

func (c SimpleConfig) GetBootstrapEmail() string { return c.BootstrapEmail }

func (c SimpleConfig) GetBootstrapPassword() string { return c.BootstrapPassword }

// ConfigFromEnv builds a SimpleConfig from the environment. Call it once
// during wiring; the bootstrap pair is optional, the signing key is
// required for the package to do anything useful.
func ConfigFromEnv() SimpleConfig {
	expiration := 24
	if v := os.Getenv("CREWAUTH_TOKEN_EXPIRATION"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			expiration = parsed
		}
	}

	return SimpleConfig{
		SigningKey:        os.Getenv("CREWAUTH_SIGNING_KEY"),
		TokenExpiration:   expiration,
		BootstrapEmail:    os.Getenv("CREWAUTH_ADMIN_EMAIL"),
		BootstrapPassword: os.Getenv("CREWAUTH_ADMIN_PASSWORD"),
	}
}
