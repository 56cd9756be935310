package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
)

// CatalogHandler consulta del catálogo y resolución de códigos de barras.
type CatalogHandler struct {
	uc       *catalog.UseCase
	resolver *catalog.Resolver
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase, resolver *catalog.Resolver) *CatalogHandler {
	return &CatalogHandler{uc: uc, resolver: resolver}
}

// ListProducts godoc
// @Summary      Listar productos del catálogo
// @Tags         catalog
// @Produce      json
// @Param        store  query  string  false  "Tienda de origen (all = todas)"
// @Success      200    {object}  dto.ProductListResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext(), c.Query("store", catalog.StoreAll))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResolveBarcode godoc
// @Summary      Resolver código de barras
// @Description  Busca en todo el catálogo, sin importar la tienda.
// @Tags         catalog
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200      {object}  dto.ProductResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/catalog/barcodes/{barcode} [get]
func (h *CatalogHandler) ResolveBarcode(c *fiber.Ctx) error {
	p, err := h.resolver.Resolve(c.UserContext(), c.Params("barcode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(catalog.ToProductResponse(*p))
}
