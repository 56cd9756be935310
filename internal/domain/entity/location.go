package entity

// Tipos de ubicación.
const (
	LocationKindStore       = "store"       // origen: tienda con stock
	LocationKindDestination = "destination" // destino: cocina, food court
)

// Location representa una tienda de origen o un destino de traslado.
type Location struct {
	ID   string
	Name string
	Kind string
}
