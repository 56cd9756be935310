package dto

// StatusCounts cantidad de productos por estado de stock.
type StatusCounts struct {
	Normal   int `json:"normal"`
	Low      int `json:"low"`
	Critical int `json:"critical"`
}

// InventoryResponse salida de GET /api/inventory.
type InventoryResponse struct {
	Store  string            `json:"store"` // "all" o nombre de tienda
	Query  string            `json:"query,omitempty"`
	Items  []ProductResponse `json:"items"`
	Counts StatusCounts      `json:"counts"`
}
