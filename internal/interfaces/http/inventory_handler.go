package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
)

// InventoryHandler inventario de tienda con estado de stock.
type InventoryHandler struct {
	uc *catalog.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *catalog.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario de tienda
// @Description  Stock por producto con estado normal/low/critical y conteo por estado.
// @Tags         inventory
// @Produce      json
// @Param        store  query  string  false  "Tienda (all = todas)"
// @Param        q      query  string  false  "Búsqueda por nombre o código"
// @Success      200    {object}  dto.InventoryResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.UserContext(), c.Query("store", catalog.StoreAll), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
