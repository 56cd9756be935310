package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenTransferRequest body de POST /api/transfers.
type OpenTransferRequest struct {
	Store       string `json:"store"`
	Destination string `json:"destination"`
}

// SelectStoreRequest body de PUT /api/transfers/:id/store.
type SelectStoreRequest struct {
	Store string `json:"store"`
}

// SelectDestinationRequest body de PUT /api/transfers/:id/destination.
type SelectDestinationRequest struct {
	Destination string `json:"destination"`
}

// AddLineRequest body de POST /api/transfers/:id/lines: product_id o barcode.
type AddLineRequest struct {
	ProductID int64  `json:"product_id,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
}

// SetQuantityRequest body de PUT /api/transfers/:id/lines/:productId.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ProductID      int64           `json:"product_id"`
	Name           string          `json:"name"`
	Barcode        string          `json:"barcode"`
	Measurement    string          `json:"measurement"`
	Quantity       int             `json:"quantity"`
	AvailableStock decimal.Decimal `json:"available_stock"`
}

// TransferSessionResponse estado de una sesión de traslado.
type TransferSessionResponse struct {
	ID          string             `json:"id"`
	Store       string             `json:"store"`
	Destination string             `json:"destination"`
	Operator    string             `json:"operator"`
	Lines       []CartLineResponse `json:"lines"`
	ItemCount   int                `json:"item_count"`
}

// CartChangeResponse resultado de una operación sobre el carrito.
// Outcome: added, updated, removed, rejected (supera stock), missing (sin línea).
// Found es false cuando un barcode no resolvió a ningún producto.
type CartChangeResponse struct {
	Outcome string                  `json:"outcome"`
	Found   bool                    `json:"found"`
	Session TransferSessionResponse `json:"session"`
}

// SubmissionResponse salida de POST /api/transfers/:id/submit.
type SubmissionResponse struct {
	Message     string             `json:"message"`
	Store       string             `json:"store"`
	Destination string             `json:"destination"`
	Operator    string             `json:"operator"`
	Lines       []CartLineResponse `json:"lines"`
	SubmittedAt time.Time          `json:"submitted_at"`
	OrderID     string             `json:"order_id,omitempty"` // solo si se registran órdenes
}
