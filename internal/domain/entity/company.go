package entity

import "time"

// Estados válidos de una Company.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
	CompanyStatusInactive  = "inactive"
)

// Planes de suscripción.
const (
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Company representa una organización/tenant del sistema. Toda entidad de
// negocio referencia una Company vía CompanyID; es la frontera de aislamiento
// de datos del modelo multi-tenant.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o identificación tributaria
	Email     string
	Phone     string
	Address   string
	Status    string // active, suspended, inactive
	Plan      string // basic, pro, enterprise
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la empresa puede operar (login, escritura).
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

// Módulos SaaS disponibles (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModuleFieldSales     = "field_sales"
	ModuleFieldMarketing = "field_marketing"
	ModulePromotions     = "promotions"
	ModuleReporting      = "reporting"
)

// KnownModule valida que el nombre pertenezca al catálogo de módulos.
func KnownModule(name string) bool {
	switch name {
	case ModuleFieldSales, ModuleFieldMarketing, ModulePromotions, ModuleReporting:
		return true
	}
	return false
}

// CompanyModule representa la activación de un módulo SaaS en una empresa.
type CompanyModule struct {
	ID          string
	CompanyID   string
	ModuleName  string // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
