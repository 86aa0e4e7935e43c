package crewauth

import (
	"net/http"
	"strings"
	"time"
)

const bearerScheme = "Bearer "

// Decision is the guard's answer for one request. When OK is false,
// Status and Reason say how the route must respond; the route performs
// no further work.
type Decision struct {
	OK     bool
	Claims *TokenClaims
	Status int
	Reason string
}

// Guard is the request-authorization decision function every protected
// admin route calls first. It has no side effects beyond reading the
// Authorization header value it is given.
type Guard struct {
	cfg    Config
	logger Logger
	now    func() time.Time
}

func NewGuard(cfg Config) *Guard {
	return &Guard{
		cfg:    cfg,
		logger: defLogger{},
		now:    time.Now,
	}
}

func (g *Guard) WithLogger(logger Logger) *Guard {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// AuthorizeAdmin decides whether the bearer of an Authorization header
// value is an authenticated admin.
//
// Missing or non-Bearer credentials and invalid, tampered, or expired
// tokens are 401. A valid token without the admin role is 403. An unset
// signing key is 501: that is a deployment failure for the operator to
// fix, not something the client can retry past.
func (g *Guard) AuthorizeAdmin(authorization string) Decision {
	if authorization == "" || !strings.HasPrefix(authorization, bearerScheme) {
		return deny(http.StatusUnauthorized, "missing authorization")
	}

	token := strings.TrimPrefix(authorization, bearerScheme)

	signingKey := g.cfg.GetSigningKey()
	if signingKey == "" {
		g.logger.Error("guard invoked without a signing key configured")
		return deny(http.StatusNotImplemented, "server not configured")
	}

	claims, ok := DecodeClaims(token, []byte(signingKey))
	if !ok {
		return deny(http.StatusUnauthorized, "invalid token")
	}

	// The codec validates signatures only; the expiry claim is enforced
	// here, folded into the same generic 401 as a bad signature.
	if claims.ExpiredAt(g.now()) {
		return deny(http.StatusUnauthorized, "invalid token")
	}

	if !claims.IsAdmin() {
		return deny(http.StatusForbidden, "admin role required")
	}

	return Decision{OK: true, Claims: claims}
}

func deny(status int, reason string) Decision {
	return Decision{OK: false, Status: status, Reason: reason}
}
