package crewauth

import "time"

// TokenClaims is the payload carried by every token this package issues.
type TokenClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	Expiry  int64  `json:"exp"`
}

// Expires returns the expiry claim as a time. Zero value when the claim
// is absent.
func (c *TokenClaims) Expires() time.Time {
	if c.Expiry == 0 {
		return time.Time{}
	}
	return time.Unix(c.Expiry, 0)
}

// ExpiredAt reports whether the token is past its expiry at the given
// instant. Tokens without an exp claim never expire.
func (c *TokenClaims) ExpiredAt(now time.Time) bool {
	return c.Expiry != 0 && now.Unix() > c.Expiry
}

// HasRole checks the role claim against an exact role literal.
func (c *TokenClaims) HasRole(role string) bool {
	return c.Role == role
}

// IsAdmin reports whether the claims identify a platform administrator.
func (c *TokenClaims) IsAdmin() bool {
	return c.HasRole(RoleAdmin)
}
