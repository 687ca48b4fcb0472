package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
)

// TerritoryHandler maneja las peticiones HTTP para territorios (protegido).
type TerritoryHandler struct {
	uc *usecase.TerritoryUseCase
}

// NewTerritoryHandler construye el handler.
func NewTerritoryHandler(uc *usecase.TerritoryUseCase) *TerritoryHandler {
	return &TerritoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear territorio
// @Tags         territories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTerritoryRequest  true  "Datos del territorio"
// @Success      201   {object}  dto.TerritoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/territories [post]
func (h *TerritoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTerritoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener territorio por ID
// @Tags         territories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del territorio"
// @Success      200  {object}  dto.TerritoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/territories/{id} [get]
func (h *TerritoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "territorio no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar territorio
// @Tags         territories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del territorio"
// @Param        body  body  dto.UpdateTerritoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TerritoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/territories/{id} [put]
func (h *TerritoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTerritoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "territorio no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar territorios de la empresa
// @Tags         territories
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TerritoryListResponse
// @Router       /api/territories [get]
func (h *TerritoryHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(actorFrom(c), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar territorio
// @Tags         territories
// @Security     Bearer
// @Param        id  path  string  true  "ID del territorio"
// @Success      204
// @Router       /api/territories/{id} [delete]
func (h *TerritoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(actorFrom(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
