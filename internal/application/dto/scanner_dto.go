package dto

import "time"

// DeviceResponse cámara o lector.
type DeviceResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RegisterDeviceRequest body de POST /api/scanner/devices.
type RegisterDeviceRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DecodeRequest body de POST /api/scanner/devices/:id/decode: texto decodificado por el dispositivo.
type DecodeRequest struct {
	Text string `json:"text"`
}

// StartScanRequest body de POST /api/scanner/start. device_id vacío = primer dispositivo.
type StartScanRequest struct {
	DeviceID string `json:"device_id"`
}

// ScanResultResponse resultado de un escaneo.
type ScanResultResponse struct {
	DeviceID  string           `json:"device_id"`
	Barcode   string           `json:"barcode"`
	Found     bool             `json:"found"`
	Product   *ProductResponse `json:"product,omitempty"`
	ScannedAt time.Time        `json:"scanned_at"`
}

// ScannerStatusResponse estado del escáner.
type ScannerStatusResponse struct {
	Scanning bool                `json:"scanning"`
	DeviceID string              `json:"device_id,omitempty"`
	Result   *ScanResultResponse `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// DecodeResponse salida de POST /api/scanner/devices/:id/decode: escaneos abiertos que recibieron el texto.
type DecodeResponse struct {
	DeviceID  string `json:"device_id"`
	Delivered int    `json:"delivered"`
}
