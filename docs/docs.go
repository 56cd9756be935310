// Package docs documento OpenAPI de la API, generado desde las anotaciones swag de los handlers.
package docs

import (
	_ "embed"
	"os"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

// SwaggerInfo metadatos del documento registrado en swag.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "StockBridge API",
	Description:      "Traslados de inventario tienda - cocina.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  swaggerJSON,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Content devuelve el documento de path si existe; si no, el embebido.
func Content(path string) []byte {
	if path != "" {
		if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
			return b
		}
	}
	return []byte(SwaggerInfo.ReadDoc())
}
