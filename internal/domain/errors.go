package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrEmptyCart         = errors.New("el carrito de traslado está vacío")
	ErrSessionNotFound   = errors.New("sesión de traslado no encontrada")
	ErrDeviceUnavailable = errors.New("dispositivo de cámara no disponible")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
)
