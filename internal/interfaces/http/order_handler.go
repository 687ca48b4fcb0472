package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldsales"
	"github.com/jhoicas/fieldforce-api/internal/application/report"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// OrderHandler maneja las peticiones HTTP para pedidos (módulo field_sales).
type OrderHandler struct {
	uc  *fieldsales.OrderUseCase
	pdf *report.OrderPDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *fieldsales.OrderUseCase, pdf *report.OrderPDFUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_id, items; visit_id y campaign_id opcionales"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id e items son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID (con items)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        user_id      query  string  false  "Filtrar por agente"
// @Param        status       query  string  false  "Filtrar por estado"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD, sobre created_at)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}
	f := repository.OrderFilter{
		CustomerID: c.Query("customer_id"),
		UserID:     c.Query("user_id"),
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

// Confirm godoc
// @Summary      Confirmar pedido (placed → confirmed)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Confirm)
}

// Deliver godoc
// @Summary      Marcar pedido entregado (confirmed → delivered)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Deliver)
}

// Cancel godoc
// @Summary      Cancelar pedido no entregado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Cancel)
}

func (h *OrderHandler) transition(c *fiber.Ctx, op func(dto.Actor, string) (*dto.OrderResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := op(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar comprobante PDF del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.pdf.DownloadOrderPDF(c.Context(), actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
