package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cafe/internal/application/report"
)

// ReportHandler descarga de reportes de valorización.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Download GET /reporte.:format: pdf o xml, como adjunto.
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	data, filename, contentType, err := h.uc.Generate(c.Context(), c.Params("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
