package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
)

// LedgerHandler libro de trazabilidad.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Libro de trazabilidad
// @Description  Búsqueda por producto, orden o ID; filtro por tienda de origen y período. Incluye totales.
// @Tags         ledger
// @Produce      json
// @Param        q       query  string  false  "Búsqueda"
// @Param        store   query  string  false  "Tienda de origen (all = todas)"
// @Param        period  query  string  false  "today, week, month o all"
// @Success      200     {object}  dto.LedgerResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	f, err := ledgerFilter(c)
	if err != nil {
		return badRequest(c, CodeValidation, "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar libro
// @Tags         ledger
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/xml
// @Param        format  query  string  true   "pdf, xlsx o xml"
// @Param        q       query  string  false  "Búsqueda"
// @Param        store   query  string  false  "Tienda de origen"
// @Param        period  query  string  false  "today, week, month o all"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/ledger/export [get]
func (h *LedgerHandler) Export(c *fiber.Ctx) error {
	f, err := ledgerFilter(c)
	if err != nil {
		return badRequest(c, CodeValidation, "parámetros de consulta inválidos")
	}
	file, err := h.uc.Export(c.UserContext(), f, c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Body)
}

func ledgerFilter(c *fiber.Ctx) (ledger.Filter, error) {
	var q dto.LedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return ledger.Filter{}, err
	}
	return ledger.Filter{Query: q.Query, Store: q.Store, Period: q.Period}, nil
}
