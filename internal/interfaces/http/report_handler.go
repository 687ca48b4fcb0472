package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/report"
)

// ReportHandler maneja el dashboard operativo (módulo reporting).
type ReportHandler struct {
	uc *report.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard operativo del período
// @Description  Visitas por estado, totales de pedidos, serie diaria de ventas,
// @Description  top de productos y desempeño por agente. Sin rango: mes en curso.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.DashboardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to no puede ser anterior a from"})
	}
	out, err := h.uc.GetDashboard(c.Context(), actorFrom(c), from, endOfDay(to))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
