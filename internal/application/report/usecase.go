// Package report arma los reportes descargables de valorización del inventario.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-cafe/internal/domain"
)

// Formatos de reporte.
const (
	FormatPDF = "pdf"
	FormatXML = "xml"
)

// ReportUseCase carga el estado actual y lo entrega al generador del formato pedido.
type ReportUseCase struct {
	source       StateSource
	pdf          InventoryPDFGenerator
	xml          InventoryXMLExporter
	historyLines int
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(source StateSource, pdf InventoryPDFGenerator, xml InventoryXMLExporter, historyLines int) *ReportUseCase {
	return &ReportUseCase{source: source, pdf: pdf, xml: xml, historyLines: historyLines}
}

// Generate devuelve el contenido, el nombre de archivo sugerido y el content-type.
func (uc *ReportUseCase) Generate(ctx context.Context, format string) (data []byte, filename, contentType string, err error) {
	state, err := uc.source.Dashboard(ctx, uc.historyLines)
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: %w", err)
	}
	stamp := state.GeneratedAt.Format("20060102-150405")

	switch format {
	case FormatPDF:
		data, err = uc.pdf.GenerateInventoryPDF(ctx, state)
		filename, contentType = "inventario-"+stamp+".pdf", "application/pdf"
	case FormatXML:
		data, err = uc.xml.ExportInventoryXML(ctx, state)
		filename, contentType = "inventario-"+stamp+".xml", "application/xml"
	default:
		return nil, "", "", fmt.Errorf("%w: formato de reporte %q", domain.ErrInvalidInput, format)
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte %s: %w", format, err)
	}
	return data, filename, contentType, nil
}
