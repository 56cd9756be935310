package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
)

// LocationHandler tiendas de origen y destinos.
type LocationHandler struct {
	uc *catalog.UseCase
}

func NewLocationHandler(uc *catalog.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Tiendas y destinos
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Locations(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
