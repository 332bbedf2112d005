package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/filestore"
)

func newStockRepo(t *testing.T) (*filestore.StockRepo, string) {
	t.Helper()
	dir := t.TempDir()
	return filestore.NewStockRepository(
		filepath.Join(dir, "inventario.json"),
		filepath.Join(dir, "precios.json"),
	), dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStockRepo_GuardarYCargar(t *testing.T) {
	ctx := context.Background()
	repo, _ := newStockRepo(t)

	inv := entity.Inventory{{10, 20, 30}, {0, 5, 0}, {7, 0, 1}}
	prices := entity.NewPrices(100, 200, 300)
	require.NoError(t, repo.SaveInventory(ctx, inv))
	require.NoError(t, repo.SavePrices(ctx, prices))

	gotInv, gotPrices, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, inv, gotInv)
	for i := range prices {
		assert.True(t, prices[i].Equal(gotPrices[i]))
	}
}

func TestStockRepo_FormatoEnDisco(t *testing.T) {
	ctx := context.Background()
	repo, dir := newStockRepo(t)

	require.NoError(t, repo.SaveInventory(ctx, entity.Inventory{{10, 0, 0}, {0, 0, 0}, {0, 0, 0}}))
	require.NoError(t, repo.SavePrices(ctx, entity.Prices{
		decimal.NewFromInt(100), decimal.RequireFromString("12.5"), decimal.Zero,
	}))

	inv, err := os.ReadFile(filepath.Join(dir, "inventario.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[[10,0,0],[0,0,0],[0,0,0]]`, string(inv))

	prices, err := os.ReadFile(filepath.Join(dir, "precios.json"))
	require.NoError(t, err)
	assert.Equal(t, `[100,12.5,0]`, string(prices), "los precios se guardan como números, no como strings")
}

// Archivos escritos por la versión anterior (json.dump con espacios, precios enteros).
func TestStockRepo_CargaArchivosExistentes(t *testing.T) {
	repo, dir := newStockRepo(t)
	writeFile(t, filepath.Join(dir, "inventario.json"), "[[5, 0, 0], [1, 2, 3], [0, 0, 9]]")
	writeFile(t, filepath.Join(dir, "precios.json"), "[15000, 18000.5, 22000]")

	inv, prices, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Inventory{{5, 0, 0}, {1, 2, 3}, {0, 0, 9}}, inv)
	assert.Equal(t, "18000.5", prices[1].String())
}

func TestStockRepo_ArchivoFaltante(t *testing.T) {
	repo, dir := newStockRepo(t)

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingFile)

	writeFile(t, filepath.Join(dir, "inventario.json"), "[[0,0,0],[0,0,0],[0,0,0]]")
	_, _, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingFile, "falta precios.json")
}

func TestStockRepo_FormatoInvalido(t *testing.T) {
	repo, dir := newStockRepo(t)
	writeFile(t, filepath.Join(dir, "precios.json"), "[1,2,3]")

	for name, content := range map[string]string{
		"no es json":       "{",
		"dos filas":        "[[1,2,3],[4,5,6]]",
		"columna faltante": "[[1,2,3],[4,5],[7,8,9]]",
		"no entero":        "[[1.5,2,3],[4,5,6],[7,8,9]]",
	} {
		t.Run(name, func(t *testing.T) {
			writeFile(t, filepath.Join(dir, "inventario.json"), content)
			_, _, err := repo.Load(context.Background())
			assert.ErrorIs(t, err, domain.ErrCorruptState)
		})
	}
}

func TestStockRepo_Seed_NoSobrescribe(t *testing.T) {
	ctx := context.Background()
	repo, dir := newStockRepo(t)
	writeFile(t, filepath.Join(dir, "inventario.json"), "[[1,1,1],[1,1,1],[1,1,1]]")

	require.NoError(t, repo.Seed(ctx, entity.Inventory{}, entity.NewPrices(0, 0, 0)))

	inv, prices, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Inventory{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, inv)
	assert.True(t, prices[0].IsZero())
}
