package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// User representa un usuario interno de la aplicación de ventas.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user, guest
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}
