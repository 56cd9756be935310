package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
)

// HeaderManifestDigest SHA-256 canónico del manifiesto XML.
const HeaderManifestDigest = "X-Manifest-Digest"

// OrderHandler tablero de órdenes de traslado y sus documentos.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes de traslado
// @Tags         orders
// @Produce      json
// @Param        status  query  string  false  "pending, in-progress, completed o all"
// @Success      200     {object}  dto.OrderListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status", orders.StatusAll))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de orden
// @Description  Ítems, progreso de recogida y timeline.
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de orden (ORD-NNN)"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Slip godoc
// @Summary      Hoja de traslado en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/slip.pdf [get]
func (h *OrderHandler) Slip(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := h.uc.Slip(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", id+".pdf"))
	return c.Send(body)
}

// Manifest godoc
// @Summary      Manifiesto XML de despacho
// @Description  El digest canónico viaja también en el header X-Manifest-Digest.
// @Tags         orders
// @Produce      application/xml
// @Param        id   path  string  true  "ID de orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/manifest.xml [get]
func (h *OrderHandler) Manifest(c *fiber.Ctx) error {
	id := c.Params("id")
	body, digest, err := h.uc.Manifest(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", id+"-manifest.xml"))
	c.Set(HeaderManifestDigest, digest)
	return c.Send(body)
}
