package crewauth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Admins is the bun-backed AdminStore.
type Admins struct {
	db *bun.DB
}

var _ AdminStore = (*Admins)(nil)

func NewAdminsRepository(db *bun.DB) *Admins {
	return &Admins{db: db}
}

// GetByEmail returns the account for an email, or nil when no row exists.
func (r *Admins) GetByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	account := &AdminAccount{}
	err := r.db.NewSelect().
		Model(account).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select admin account: %w", err)
	}
	return account, nil
}

// Create inserts an account, treating email as the uniqueness constraint.
// If a concurrent writer got there first the insert is a no-op and the
// winning row is returned, so a racing first login proceeds against it.
func (r *Admins) Create(ctx context.Context, account *AdminAccount) (*AdminAccount, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	_, err := r.db.NewInsert().
		Model(account).
		On("CONFLICT (email) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert admin account: %w", err)
	}

	stored, err := r.GetByEmail(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("admin account not found after insert: %s", account.Email)
	}
	return stored, nil
}

// Update persists salt/hash/role changes for an existing account.
func (r *Admins) Update(ctx context.Context, account *AdminAccount) (*AdminAccount, error) {
	_, err := r.db.NewUpdate().
		Model(account).
		WherePK().
		OmitZero().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update admin account: %w", err)
	}
	return account, nil
}

// CreateAdminTables creates the tables this package owns. Intended for
// tests and first-run setup; production schemas belong to migrations.
func CreateAdminTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*AdminAccount)(nil),
		(*ActivityRecord)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
