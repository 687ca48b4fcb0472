package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// CustomerHandler maneja las peticiones HTTP para clientes (puntos de venta).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.TaxID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y tax_id son requeridos"})
	}
	out, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes de la empresa
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        territory_id  query  string  false  "Filtrar por territorio"
// @Param        q             query  string  false  "Búsqueda por nombre"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	f := repository.CustomerFilter{
		TerritoryID: c.Query("territory_id"),
		Query:       c.Query("q"),
		Limit:       c.QueryInt("limit", 20),
		Offset:      c.QueryInt("offset", 0),
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	out, err := h.uc.List(actorFrom(c), f)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente (company_admin o area_manager)
// @Tags         customers
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(actorFrom(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
