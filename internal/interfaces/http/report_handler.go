package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/application/reporting"
)

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	uc *reporting.ReportingUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportingUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily GET /api/reports/daily?date=2026-08-31
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	report, err := h.uc.DailyReport(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
