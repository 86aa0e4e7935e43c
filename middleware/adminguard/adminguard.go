// Package adminguard wires the crewauth request guard into fiber as
// middleware for protected admin routes.
package adminguard

import (
	"github.com/gofiber/fiber/v2"

	crewauth "github.com/harborline/go-crewauth"
)

// DefaultContextKey is where validated claims land in the request locals.
const DefaultContextKey = "admin_claims"

type Config struct {
	// Guard decides every request. Required.
	Guard *crewauth.Guard
	// ContextKey overrides where claims are stored in locals.
	ContextKey string
	// Filter skips the guard for matching requests (e.g. health checks).
	Filter func(*fiber.Ctx) bool
	// ErrorHandler overrides the JSON deny response.
	ErrorHandler func(*fiber.Ctx, crewauth.Decision) error
}

// New returns middleware that authorizes every request through the guard
// before the handler runs. Denied requests are answered immediately with
// the decision's status; the handler never sees them.
func New(config ...Config) fiber.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Guard == nil {
		panic("adminguard: missing Guard in config")
	}
	if cfg.ContextKey == "" {
		cfg.ContextKey = DefaultContextKey
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		decision := cfg.Guard.AuthorizeAdmin(c.Get(fiber.HeaderAuthorization))
		if !decision.OK {
			return cfg.ErrorHandler(c, decision)
		}

		c.Locals(cfg.ContextKey, decision.Claims)
		return c.Next()
	}
}

func defaultErrorHandler(c *fiber.Ctx, decision crewauth.Decision) error {
	return c.Status(decision.Status).JSON(fiber.Map{
		"error": decision.Reason,
	})
}

// ClaimsFromCtx retrieves the validated claims a successful guard pass
// stored for the handler. The second result is false when the middleware
// did not run or denied the request.
func ClaimsFromCtx(c *fiber.Ctx, key ...string) (*crewauth.TokenClaims, bool) {
	k := DefaultContextKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}

	claims, ok := c.Locals(k).(*crewauth.TokenClaims)
	return claims, ok
}
