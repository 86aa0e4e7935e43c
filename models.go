package crewauth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Role is a principal kind on the crewing platform.
type Role = string

const (
	// RoleAdmin is the only role this subsystem ever issues tokens for.
	RoleAdmin Role = "admin"
	// RoleSeafarer is a crew member account (authenticated elsewhere).
	RoleSeafarer Role = "seafarer"
	// RoleShipowner is a vessel operator account (authenticated elsewhere).
	RoleShipowner Role = "shipowner"
)

// AdminAccount is the stored admin credential record. The salt and hash
// are computed together and only ever rotate together; verification
// always recomputes with the stored salt and compares to the stored hash.
type AdminAccount struct {
	bun.BaseModel `bun:"table:admin_accounts,alias:adm"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Salt          string     `bun:"salt,notnull" json:"-"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Role          Role       `bun:"user_role,notnull" json:"user_role,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// NewAdminAccount builds an account for a plaintext password: fresh salt,
// scrypt hash, admin role.
func NewAdminAccount(email, password string) (*AdminAccount, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(password, salt)
	if err != nil {
		return nil, err
	}

	return &AdminAccount{
		ID:           uuid.New(),
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
		Role:         RoleAdmin,
	}, nil
}
