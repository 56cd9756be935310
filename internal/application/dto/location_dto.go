package dto

// LocationResponse salida de una tienda o destino.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"` // store, destination
}

// LocationListResponse tiendas y destinos.
type LocationListResponse struct {
	Stores       []LocationResponse `json:"stores"`
	Destinations []LocationResponse `json:"destinations"`
}
