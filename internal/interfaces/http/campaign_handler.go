package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// CampaignHandler maneja las peticiones HTTP para campañas (módulo promotions).
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campaña (queda en draft)
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Datos de la campaña"
// @Success      201   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" || in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, type, starts_at y ends_at son requeridos"})
	}
	out, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener campaña por ID
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campaña (solo en draft)
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la campaña"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CampaignResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar campañas de la empresa
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        type    query  string  false  "Filtrar por tipo"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.CampaignListResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	f := repository.CampaignFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
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

// Activate godoc
// @Summary      Activar campaña (draft → active)
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id}/activate [post]
func (h *CampaignHandler) Activate(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Activate)
}

// Complete godoc
// @Summary      Cerrar campaña (active → completed)
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id}/complete [post]
func (h *CampaignHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Complete)
}

// Cancel godoc
// @Summary      Cancelar campaña (draft o active)
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id}/cancel [post]
func (h *CampaignHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Cancel)
}

// Delete godoc
// @Summary      Eliminar campaña (solo draft)
// @Tags         campaigns
// @Security     Bearer
// @Param        id  path  string  true  "ID de la campaña"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(actorFrom(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CampaignHandler) transition(c *fiber.Ctx, op func(dto.Actor, string) (*dto.CampaignResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := op(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
	}
	return c.JSON(out)
}
