// Package xmlexport exporta la valorización del inventario como documento XML
// para sistemas contables externos.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
)

var _ report.InventoryXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter implementa report.InventoryXMLExporter con beevik/etree.
//
// Estructura:
//
//	<inventario generado="..." valorTotal="...">
//	  <precios><precio cafe="Castillo">100</precio>...</precios>
//	  <bodega nombre="Sevilla" valor="700"><cafe nombre="Castillo" sacos="7"/>...</bodega>
//	  <historial><movimiento>...</movimiento></historial>
//	</inventario>
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// ExportInventoryXML serializa el estado con indentación de dos espacios.
func (e *EtreeExporter) ExportInventoryXML(_ context.Context, state *dto.DashboardDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inventario")
	root.CreateAttr("generado", state.GeneratedAt.Format("2006-01-02T15:04:05"))
	root.CreateAttr("valorTotal", state.TotalValue.String())

	prices := root.CreateElement("precios")
	for j, name := range state.Varieties {
		p := prices.CreateElement("precio")
		p.CreateAttr("cafe", name)
		p.SetText(state.Prices[j].String())
	}

	for i, wh := range state.Warehouses {
		b := root.CreateElement("bodega")
		b.CreateAttr("nombre", wh)
		b.CreateAttr("valor", state.WarehouseValue[i].String())
		for j, name := range state.Varieties {
			c := b.CreateElement("cafe")
			c.CreateAttr("nombre", name)
			c.CreateAttr("sacos", strconv.FormatInt(state.Inventory[i][j], 10))
		}
	}

	hist := root.CreateElement("historial")
	for _, l := range state.History {
		hist.CreateElement("movimiento").SetText(l)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
