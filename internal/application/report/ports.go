package report

import (
	"context"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
)

// InventoryPDFGenerator genera el reporte de valorización en PDF.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, state *dto.DashboardDTO) ([]byte, error)
}

// InventoryXMLExporter genera el reporte de valorización en XML.
type InventoryXMLExporter interface {
	ExportInventoryXML(ctx context.Context, state *dto.DashboardDTO) ([]byte, error)
}

// StateSource fuente del estado a reportar (implementado por inventory.InventoryUseCase).
type StateSource interface {
	Dashboard(ctx context.Context, historyLines int) (*dto.DashboardDTO, error)
}
