package auth

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleDriver   Role = "driver"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Level orders roles for hierarchy checks: admin > operator > driver.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleOperator:
		return 2
	case RoleDriver:
		return 1
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// Actor is the authenticated caller of a usecase.
type Actor struct {
	ID   uuid.UUID
	Role Role
	// Lots scopes an operator's gate device; empty means no scope beyond ownership.
	Lots []uuid.UUID
}

// MayOperate reports whether the actor's scope admits lotID.
func (a Actor) MayOperate(lotID uuid.UUID) bool {
	return len(a.Lots) == 0 || slices.Contains(a.Lots, lotID)
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
