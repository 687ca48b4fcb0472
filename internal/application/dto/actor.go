package dto

// Actor identifica al usuario autenticado que ejecuta la operación.
// Lo construye el handler a partir de los claims del JWT; los casos de uso
// toman el company_id SIEMPRE de aquí, nunca del body ni de la URL.
type Actor struct {
	UserID    string
	CompanyID string
	Role      string
}

// IsSuperAdmin indica si el actor puede operar sobre cualquier empresa.
func (a Actor) IsSuperAdmin() bool { return a.Role == "super_admin" }
