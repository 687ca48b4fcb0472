package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para empresas (tenants).
// Las operaciones globales (list, create, delete, módulos) se restringen a
// super_admin en el router.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.TaxID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y tax_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas (solo super_admin)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa (solo super_admin)
// @Tags         companies
// @Security     Bearer
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListModules godoc
// @Summary      Listar módulos de una empresa
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.ModuleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/modules [get]
func (h *CompanyHandler) ListModules(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListModules(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// SetModule godoc
// @Summary      Activar o desactivar un módulo SaaS (solo super_admin)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.ActivateModuleRequest  true  "module_name, is_active, expires_at"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/modules [put]
func (h *CompanyHandler) SetModule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActivateModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ModuleName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "module_name es requerido"})
	}
	if err := h.uc.SetModule(id, in); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
