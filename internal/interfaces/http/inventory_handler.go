package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/inventory"
	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
)

// InventoryHandler maneja las páginas HTML del tablero y los formularios de precios y traslados.
type InventoryHandler struct {
	uc           *inventory.InventoryUseCase
	title        string
	historyLines int
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, title string, historyLines int) *InventoryHandler {
	return &InventoryHandler{uc: uc, title: title, historyLines: historyLines}
}

// Index GET /: inventario, precios, valor por bodega, total e historial reciente.
func (h *InventoryHandler) Index(c *fiber.Ctx) error {
	state, err := h.uc.Dashboard(c.Context(), h.historyLines)
	if err != nil {
		return writeError(c, err)
	}
	return c.Render("index", fiber.Map{
		"Title": h.title,
		"State": state,
	})
}

// UpdatePrices POST /actualizar-precios: form precio_castillo, precio_caturra, precio_borbon (enteros).
func (h *InventoryHandler) UpdatePrices(c *fiber.Ctx) error {
	vals, err := formInts(c, "precio_castillo", "precio_caturra", "precio_borbon")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORM", Message: err.Error()})
	}
	if err := h.uc.UpdatePrices(c.Context(), entity.NewPrices(vals[0], vals[1], vals[2])); err != nil {
		return writeError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// TransferStock POST /mover-inventario: form origen, destino, cafe (0 a 2) y cantidad.
// Redirige al tablero tanto si el traslado se aplica como si se rechaza.
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	vals, err := formInts(c, "origen", "destino", "cafe", "cantidad")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORM", Message: err.Error()})
	}
	_, err = h.uc.TransferStock(c.Context(), dto.TransferRequest{
		FromWarehouse: int(vals[0]),
		ToWarehouse:   int(vals[1]),
		Variety:       int(vals[2]),
		Quantity:      vals[3],
	})
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrInsufficientStock) {
		return writeError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// formInts lee campos enteros obligatorios del formulario, en orden.
func formInts(c *fiber.Ctx, keys ...string) ([]int64, error) {
	out := make([]int64, len(keys))
	for i, k := range keys {
		raw := strings.TrimSpace(c.FormValue(k))
		if raw == "" {
			return nil, errors.New(k + " es requerido")
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New(k + " debe ser un número entero")
		}
		out[i] = n
	}
	return out, nil
}
