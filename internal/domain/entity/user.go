package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "super_admin"   // opera sobre cualquier empresa
	RoleCompanyAdmin = "company_admin" // administra su empresa
	RoleAreaManager  = "area_manager"  // supervisa un territorio
	RoleFieldAgent   = "field_agent"   // visitas y pedidos en campo
)

// KnownRole valida que el rol pertenezca al catálogo.
func KnownRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleAreaManager, RoleFieldAgent:
		return true
	}
	return false
}

// User representa un usuario del sistema (pertenece a una Company).
// Solo RoleSuperAdmin puede actuar fuera de su empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string  // ver constantes Role*
	Status       string  // active, inactive, suspended
	TerritoryID  *string // área asignada (area_manager / field_agent); nil = sin asignar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin indica si el usuario puede cruzar la frontera de tenant.
func (u *User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
