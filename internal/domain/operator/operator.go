package operator

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole = errors.New("invalid operator role")
	ErrEmptyName   = errors.New("operator name cannot be empty")
)

type Role string

const (
	RoleFrontDesk Role = "front_desk"
	RoleManager   Role = "manager"
	RoleAuditor   Role = "auditor"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFrontDesk, RoleManager, RoleAuditor:
		return true
	default:
		return false
	}
}

// CanWrite reports whether the role may mutate reservations and folios.
func (r Role) CanWrite() bool {
	return r == RoleFrontDesk || r == RoleManager
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Operator is the staff member acting on a reservation; its name is the audit actor.
type Operator struct {
	id   uuid.UUID
	name string
	role Role
}

func New(id uuid.UUID, name string, role Role) (Operator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Operator{}, ErrEmptyName
	}
	if !role.IsValid() {
		return Operator{}, ErrInvalidRole
	}
	return Operator{id: id, name: name, role: role}, nil
}

func (o Operator) ID() uuid.UUID { return o.id }
func (o Operator) Name() string  { return o.name }
func (o Operator) Role() Role    { return o.role }
