package crewauth

import "errors"

// ErrInvalidCredentials is the single error returned for unknown emails
// and wrong passwords alike, so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrRoleNotAllowed is returned when a verified account is not an admin.
var ErrRoleNotAllowed = errors.New("admin role required")

// ErrMissingSigningKey indicates the signing secret was never configured.
// This is an operator problem, not a client one.
var ErrMissingSigningKey = errors.New("signing key not configured")

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = errors.New("value cannot be an empty string")
