package entity

import "time"

// Device cámara o lector disponible para escanear.
type Device struct {
	ID    string
	Label string
}

// ScanResult resultado de una sesión de escaneo. Product es nil cuando Found es false.
type ScanResult struct {
	DeviceID  string
	Barcode   string
	Found     bool
	Product   *Product
	ScannedAt time.Time
}
