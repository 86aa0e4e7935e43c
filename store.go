package crewauth

import (
	"context"
	"strings"
)

// CredentialStore adapts the admin persistence layer for the login path
// and owns the zero-seed bootstrap of the first admin account.
type CredentialStore struct {
	admins AdminStore
	cfg    Config
	logger Logger
	sink   ActivitySink
}

func NewCredentialStore(admins AdminStore, cfg Config) *CredentialStore {
	return &CredentialStore{
		admins: admins,
		cfg:    cfg,
		logger: defLogger{},
		sink:   noopActivitySink{},
	}
}

func (s *CredentialStore) WithLogger(logger Logger) *CredentialStore {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *CredentialStore) WithActivitySink(sink ActivitySink) *CredentialStore {
	s.sink = normalizeActivitySink(sink)
	return s
}

// FindAdmin looks up a stored admin record. nil without error means no
// record exists.
func (s *CredentialStore) FindAdmin(ctx context.Context, email string) (*AdminAccount, error) {
	return s.admins.GetByEmail(ctx, email)
}

// BootstrapIfConfigured lazily provisions the first admin account. It
// fires only when no record matches the email, bootstrap credentials are
// configured, and the configured email equals the requested one. The
// create is guarded by the store's email uniqueness constraint, so two
// racing first logins converge on a single row. Returns nil when the
// bootstrap conditions do not hold.
func (s *CredentialStore) BootstrapIfConfigured(ctx context.Context, email string) (*AdminAccount, error) {
	bootEmail := s.cfg.GetBootstrapEmail()
	bootPassword := s.cfg.GetBootstrapPassword()

	if bootEmail == "" || bootPassword == "" {
		return nil, nil
	}

	if !strings.EqualFold(bootEmail, email) {
		return nil, nil
	}

	account, err := NewAdminAccount(bootEmail, bootPassword)
	if err != nil {
		return nil, err
	}

	stored, err := s.admins.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("bootstrapped admin account", "email", bootEmail)
	if err := s.sink.Record(ctx, ActivityEvent{
		EventType: ActivityEventAdminBootstrap,
		Email:     bootEmail,
	}); err != nil {
		s.logger.Warn("activity sink record error: %v", err)
	}

	return stored, nil
}
