package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/pdf"
)

func TestGenerateInventoryPDF(t *testing.T) {
	state := &dto.DashboardDTO{
		Warehouses:     []string{"Sevilla", "Tuluá", "Caicedonia"},
		Varieties:      []string{"Castillo", "Caturra", "Borbón"},
		Inventory:      [3][3]int64{{7, 0, 0}, {3, 0, 0}, {0, 0, 0}},
		Prices:         [3]decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.NewFromInt(300)},
		WarehouseValue: [3]decimal.Decimal{decimal.NewFromInt(700), decimal.NewFromInt(300), decimal.Zero},
		TotalValue:     decimal.NewFromInt(1000),
		History:        []string{"[2024-01-01 10:00:00] Movimiento de 3 sacos de Castillo desde Sevilla a Tuluá"},
		GeneratedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := pdf.NewMarotoReportGenerator("Inventario de Café").GenerateInventoryPDF(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un documento PDF")
}
