// Package pdf genera el reporte de valorización del inventario de café.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Inventario de Café  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bodega | Castillo | Caturra | Borbón | Valor         │
//	│  PRECIOS: precio unitario por variedad                       │
//	│  TOTAL: valor total del inventario                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: últimos movimientos                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
	"github.com/jhoicas/inventario-cafe/pkg/money"
)

var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 92, Green: 58, Blue: 33}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxHistoryRows límite de movimientos impresos en el reporte.
const maxHistoryRows = 40

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; title encabeza el reporte.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: title}
}

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, state *dto.DashboardDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Valorización de inventario", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, state))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(state.Varieties))
	m.AddRows(inventoryRows(state)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pricesRow(state))
	m.AddRows(totalRow(state))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(historyRows(state.History)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, state *dto.DashboardDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Valorización de inventario por bodega", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+state.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// Columnas: bodega (3) + una por variedad (2 c/u) + valor (3) = 12.
func tableHeaderRow(varieties []string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{h("Bodega", 3, align.Left)}
	for _, v := range varieties {
		cols = append(cols, h(v, 2, align.Right))
	}
	cols = append(cols, h("Valor", 3, align.Right))
	return row.New(8).Add(cols...)
}

func inventoryRows(state *dto.DashboardDTO) []core.Row {
	rows := make([]core.Row, 0, len(state.Warehouses))
	for i, wh := range state.Warehouses {
		cols := []core.Col{col.New(3).Add(text.New(wh, props.Text{Size: 8, Top: 1, Left: 1}))}
		for _, qty := range state.Inventory[i] {
			cols = append(cols, col.New(2).Add(text.New(money.Quantity(qty), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})))
		}
		cols = append(cols, col.New(3).Add(text.New(money.Format(state.WarehouseValue[i]), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})))
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}

func pricesRow(state *dto.DashboardDTO) core.Row {
	cols := []core.Col{col.New(3).Add(text.New("Precio por saco", props.Text{
		Style: fontstyle.Italic, Size: 8, Top: 1, Left: 1, Color: colorGray,
	}))}
	for _, p := range state.Prices {
		cols = append(cols, col.New(2).Add(text.New(money.Format(p), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
		})))
	}
	cols = append(cols, col.New(3))
	return row.New(7).Add(cols...)
}

func totalRow(state *dto.DashboardDTO) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("VALOR TOTAL DEL INVENTARIO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(money.Format(state.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func historyRows(history []string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ÚLTIMOS MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(history) == 0 {
		return append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 7, Color: colorGray, Top: 1}),
		)))
	}
	if len(history) > maxHistoryRows {
		history = history[:maxHistoryRows]
	}
	for _, l := range history {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}
