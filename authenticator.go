package crewauth

import (
	"context"
)

// Auther composes the credential store, the password verifier, and the
// token service into the login flow.
type Auther struct {
	store        *CredentialStore
	tokenService *TokenService
	logger       Logger
	activitySink ActivitySink
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store *CredentialStore, cfg Config) *Auther {
	return &Auther{
		store:        store,
		tokenService: NewTokenService([]byte(cfg.GetSigningKey()), cfg.GetTokenExpiration(), nil),
		logger:       defLogger{},
		activitySink: noopActivitySink{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithActivitySink configures an ActivitySink for emitting auth events.
func (s *Auther) WithActivitySink(sink ActivitySink) *Auther {
	s.activitySink = normalizeActivitySink(sink)
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() *TokenService {
	return s.tokenService
}

// Login verifies an email/password pair and returns a signed bearer
// token. Unknown emails, wrong passwords, and non-admin roles all fail
// with the same ErrInvalidCredentials so callers cannot tell which
// factor was wrong. The first matching login against the configured
// bootstrap pair provisions the account before verification.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.store.FindAdmin(ctx, email)
	if err != nil {
		s.logger.Error("Login account lookup error", "error", err)
		return "", err
	}

	if account == nil {
		account, err = s.store.BootstrapIfConfigured(ctx, email)
		if err != nil {
			s.logger.Error("Login bootstrap error", "error", err)
			return "", err
		}
	}

	if account == nil {
		return "", s.failLogin(ctx, email, "account not found")
	}

	if !VerifyPassword(password, account.Salt, account.PasswordHash) {
		return "", s.failLogin(ctx, email, "password mismatch")
	}

	if account.Role != RoleAdmin {
		s.logger.Warn("Login blocked for non-admin account", "email", email, "role", account.Role)
		return "", s.failLogin(ctx, email, "role not allowed")
	}

	token, err := s.tokenService.Generate(account)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", err
	}

	s.emitAuthEvent(ctx, ActivityEventLoginSuccess, email, nil)
	return token, nil
}

// failLogin records the failure for the audit trail and returns the
// generic credential error. The reason stays server-side.
func (s *Auther) failLogin(ctx context.Context, email, reason string) error {
	s.emitAuthEvent(ctx, ActivityEventLoginFailure, email, map[string]any{
		"reason": reason,
	})
	return ErrInvalidCredentials
}

func (s *Auther) emitAuthEvent(ctx context.Context, eventType ActivityEventType, email string, metadata map[string]any) {
	sink := normalizeActivitySink(s.activitySink)
	if err := sink.Record(ctx, ActivityEvent{
		EventType: eventType,
		Email:     email,
		Metadata:  metadata,
	}); err != nil {
		s.logger.Warn("activity sink record error: %v", err)
	}
}
