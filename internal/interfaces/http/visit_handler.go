package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldmarketing"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// VisitHandler maneja las peticiones HTTP para visitas (módulo field_marketing).
type VisitHandler struct {
	uc *fieldmarketing.VisitUseCase
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *fieldmarketing.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Schedule godoc
// @Summary      Agendar visita
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleVisitRequest  true  "customer_id, scheduled_at; user_id opcional"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || in.ScheduledAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y scheduled_at son requeridos"})
	}
	out, err := h.uc.Schedule(actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener visita por ID
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar visitas
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        user_id      query  string  false  "Filtrar por agente"
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        status       query  string  false  "Filtrar por estado"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD, sobre scheduled_at)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.VisitListResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}
	f := repository.VisitFilter{
		UserID:     c.Query("user_id"),
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	if !from.IsZero() {
		f.From = &from
	}
	if !to.IsZero() {
		end := endOfDay(to)
		f.To = &end
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

// CheckIn godoc
// @Summary      Check-in de la visita (scheduled → in_progress)
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/check-in [post]
func (h *VisitHandler) CheckIn(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.CheckIn(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// CheckOut godoc
// @Summary      Check-out de la visita con resultado (in_progress → completed)
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la visita"
// @Param        body  body  dto.CheckOutVisitRequest  true  "outcome, notes"
// @Success      200   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/check-out [post]
func (h *VisitHandler) CheckOut(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CheckOutVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Outcome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "outcome es requerido"})
	}
	out, err := h.uc.CheckOut(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar visita agendada
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/cancel [post]
func (h *VisitHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Cancel(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}
