package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/inventory"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
)

const maxHistoryLimit = 1000

// APIHandler expone el mismo estado en JSON.
type APIHandler struct {
	uc           *inventory.InventoryUseCase
	historyLines int
}

// NewAPIHandler construye el handler.
func NewAPIHandler(uc *inventory.InventoryUseCase, historyLines int) *APIHandler {
	return &APIHandler{uc: uc, historyLines: historyLines}
}

// GetState godoc
// @Summary      Estado del inventario
// @Description  Inventario, precios, valor por bodega, valor total e historial reciente.
// @Tags         inventario
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estado [get]
func (h *APIHandler) GetState(c *fiber.Ctx) error {
	state, err := h.uc.Dashboard(c.Context(), h.historyLines)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

// UpdatePrices godoc
// @Summary      Reemplazar precios
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePricesRequest  true  "precio_castillo, precio_caturra, precio_borbon"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/precios [put]
func (h *APIHandler) UpdatePrices(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Castillo == nil || in.Caturra == nil || in.Borbon == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requieren los tres precios"})
	}
	if err := h.uc.UpdatePrices(c.Context(), entity.Prices{*in.Castillo, *in.Caturra, *in.Borbon}); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "precios actualizados"})
}

// TransferStock godoc
// @Summary      Trasladar sacos entre bodegas
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "origen, destino, cafe (0-2), cantidad > 0"
// @Success      201   {object}  dto.TransferResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/traslados [post]
func (h *APIHandler) TransferStock(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.TransferStock(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetHistory godoc
// @Summary      Historial de movimientos
// @Tags         inventario
// @Produce      json
// @Param        limit  query  int  false  "Máximo de líneas"  default(50)
// @Success      200    {object}  dto.HistoryResponse
// @Router       /api/historial [get]
func (h *APIHandler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	lines, err := h.uc.History(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.HistoryResponse{Total: len(lines), Lines: lines})
}
