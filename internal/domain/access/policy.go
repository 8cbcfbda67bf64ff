// Package access decide qué acciones puede realizar un usuario según su rol.
// Es una función pura sobre (principal, acción); no conoce HTTP ni sesiones.
package access

import (
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Action acción sobre registros de venta.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Decision resultado de Authorize; el caller ramifica sobre él.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Allowed indica si la decisión permite la acción.
func (d Decision) Allowed() bool { return d == Allow }

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	default:
		return "deny_forbidden"
	}
}

// Err traduce la decisión a los errores de dominio: nil, ErrUnauthorized o ErrForbidden.
func (d Decision) Err() error {
	switch d {
	case Allow:
		return nil
	case DenyUnauthenticated:
		return domain.ErrUnauthorized
	default:
		return domain.ErrForbidden
	}
}

// Principal lo único que la política necesita saber del usuario actual.
type Principal struct {
	Authenticated bool
	Role          string
}

// policy tabla rol -> acciones permitidas.
var policy = map[string]map[Action]bool{
	entity.RoleAdmin: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
	entity.RoleUser:  {ActionView: true, ActionCreate: true, ActionEdit: true},
	entity.RoleGuest: {ActionView: true},
}

// Authorize decide si p puede ejecutar a. Un rol desconocido se trata como invitado.
func Authorize(p Principal, a Action) Decision {
	if !p.Authenticated {
		return DenyUnauthenticated
	}
	perms, ok := policy[p.Role]
	if !ok {
		perms = policy[entity.RoleGuest]
	}
	if perms[a] {
		return Allow
	}
	return DenyForbidden
}
