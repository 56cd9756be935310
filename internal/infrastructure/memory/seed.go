// Package memory implementa los puertos de repositorio sobre datos en memoria.
// Es el backend por defecto: sirve el catálogo mock de tiendas y cocinas.
package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

var seedDay = time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return seedDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func atPtr(hour, min int) *time.Time {
	t := at(hour, min)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedProducts catálogo mock: seis productos repartidos entre Store A y Store B.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Barcode: "4011", Name: "Tomatoes", Measurement: "kg", Stock: dec("45"), Store: "Store A", ReorderPoint: dec("20"), UnitCost: dec("9.10"), UpdatedAt: at(14, 58)},
		{ID: 2, Barcode: "8411", Name: "Olive Oil", Measurement: "L", Stock: dec("12"), Store: "Store A", ReorderPoint: dec("15"), UnitCost: dec("14.00"), UpdatedAt: at(14, 55)},
		{ID: 3, Barcode: "2034", Name: "Flour", Measurement: "kg", Stock: dec("89"), Store: "Store B", ReorderPoint: dec("30"), UnitCost: dec("1.50"), UpdatedAt: at(14, 59)},
		{ID: 4, Barcode: "7821", Name: "Chicken Breast", Measurement: "kg", Stock: dec("25"), Store: "Store A", ReorderPoint: dec("50"), UnitCost: dec("15.00"), UpdatedAt: at(14, 57)},
		{ID: 5, Barcode: "9234", Name: "Mozzarella", Measurement: "kg", Stock: dec("28"), Store: "Store B", ReorderPoint: dec("10"), UnitCost: dec("12.00"), UpdatedAt: at(14, 50)},
		{ID: 6, Barcode: "5612", Name: "Pasta", Measurement: "kg", Stock: dec("156"), Store: "Store A", ReorderPoint: dec("40"), UnitCost: dec("2.50"), UpdatedAt: at(14, 45)},
	}
}

// SeedLocations tiendas de origen y destinos.
func SeedLocations() []entity.Location {
	return []entity.Location{
		{ID: "store-a", Name: "Store A", Kind: entity.LocationKindStore},
		{ID: "store-b", Name: "Store B", Kind: entity.LocationKindStore},
		{ID: "kitchen", Name: "Kitchen", Kind: entity.LocationKindDestination},
		{ID: "food-court", Name: "Food Court", Kind: entity.LocationKindDestination},
	}
}

// SeedOrders tablero de órdenes inicial (ORD-001 a ORD-004).
func SeedOrders() []entity.TransferOrder {
	return []entity.TransferOrder{
		{
			ID: "ORD-001", Status: entity.OrderStatusPending, Store: "Store A", Destination: "Kitchen",
			CreatedBy: "John Doe", CreatedAt: at(14, 30),
			Items: []entity.TransferOrderItem{
				{ID: 1, ProductID: 1, Name: "Tomatoes", Barcode: "4011", Quantity: dec("5"), Measurement: "kg"},
				{ID: 2, ProductID: 2, Name: "Olive Oil", Barcode: "8411", Quantity: dec("2"), Measurement: "L"},
			},
			Timeline: []entity.OrderEvent{
				{Event: "Order Created", At: atPtr(14, 30), User: "John Doe", Completed: true},
				{Event: "Items Picked", User: "-"},
				{Event: "Transfer Complete", User: "-"},
			},
		},
		{
			ID: "ORD-002", Status: entity.OrderStatusInProgress, Store: "Store B", Destination: "Kitchen",
			CreatedBy: "Jane Smith", AssignedTo: "Mike Johnson", CreatedAt: at(13, 45),
			Items: []entity.TransferOrderItem{
				{ID: 1, ProductID: 3, Name: "Flour", Barcode: "2034", Quantity: dec("10"), Measurement: "kg", Picked: true},
				{ID: 2, ProductID: 4, Name: "Chicken Breast", Barcode: "7821", Quantity: dec("3"), Measurement: "kg"},
			},
			Timeline: []entity.OrderEvent{
				{Event: "Order Created", At: atPtr(13, 45), User: "Jane Smith", Completed: true},
				{Event: "Assigned to Mike Johnson", At: atPtr(13, 47), User: "System", Completed: true},
				{Event: "Picking Started", At: atPtr(13, 50), User: "Mike Johnson", Completed: true},
				{Event: "Items Picked", User: "-"},
				{Event: "Transfer Complete", User: "-"},
			},
		},
		{
			ID: "ORD-003", Status: entity.OrderStatusCompleted, Store: "Store A", Destination: "Food Court",
			CreatedBy: "Sarah Wilson", AssignedTo: "Tom Brown", CreatedAt: at(12, 15),
			Items: []entity.TransferOrderItem{
				{ID: 1, ProductID: 6, Name: "Pasta", Barcode: "5612", Quantity: dec("15"), Measurement: "kg", Picked: true},
			},
			Timeline: []entity.OrderEvent{
				{Event: "Order Created", At: atPtr(12, 15), User: "Sarah Wilson", Completed: true},
				{Event: "Assigned to Tom Brown", At: atPtr(12, 16), User: "System", Completed: true},
				{Event: "Items Picked", At: atPtr(12, 40), User: "Tom Brown", Completed: true},
				{Event: "Transfer Complete", At: atPtr(12, 55), User: "Tom Brown", Completed: true},
			},
		},
		{
			ID: "ORD-004", Status: entity.OrderStatusPending, Store: "Store A", Destination: "Kitchen",
			CreatedBy: "John Doe", CreatedAt: at(14, 15),
			Items: []entity.TransferOrderItem{
				{ID: 1, ProductID: 5, Name: "Mozzarella", Barcode: "9234", Quantity: dec("4"), Measurement: "kg"},
				{ID: 2, ProductID: 1, Name: "Tomatoes", Barcode: "4011", Quantity: dec("8"), Measurement: "kg"},
				// Basil no está en el catálogo.
				{ID: 3, Name: "Basil", Quantity: dec("0.5"), Measurement: "kg"},
			},
			Timeline: []entity.OrderEvent{
				{Event: "Order Created", At: atPtr(14, 15), User: "John Doe", Completed: true},
				{Event: "Items Picked", User: "-"},
				{Event: "Transfer Complete", User: "-"},
			},
		},
	}
}

// SeedTransactions libro de trazabilidad inicial (TRX-001 a TRX-005).
func SeedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "TRX-001", OrderID: "ORD-001", Product: "Tomatoes", Quantity: dec("5"), Measurement: "kg", From: "Store A", To: "Kitchen", Timestamp: at(14, 30), User: "John Doe", Cost: dec("45.5"), Status: "completed"},
		{ID: "TRX-002", OrderID: "ORD-001", Product: "Olive Oil", Quantity: dec("2"), Measurement: "L", From: "Store A", To: "Kitchen", Timestamp: at(14, 30), User: "John Doe", Cost: dec("28.0"), Status: "completed"},
		{ID: "TRX-003", OrderID: "ORD-002", Product: "Flour", Quantity: dec("10"), Measurement: "kg", From: "Store B", To: "Kitchen", Timestamp: at(13, 45), User: "Jane Smith", Cost: dec("15.0"), Status: "completed"},
		{ID: "TRX-004", OrderID: "ORD-003", Product: "Pasta", Quantity: dec("15"), Measurement: "kg", From: "Store A", To: "Food Court", Timestamp: at(12, 15), User: "Sarah Wilson", Cost: dec("37.5"), Status: "completed"},
		{ID: "TRX-005", OrderID: "ORD-002", Product: "Chicken Breast", Quantity: dec("3"), Measurement: "kg", From: "Store B", To: "Kitchen", Timestamp: at(13, 45), User: "Jane Smith", Cost: dec("45.0"), Status: "completed"},
	}
}

// SeedOperators operadores de tienda con el mismo PIN inicial (hash bcrypt).
func SeedOperators(pin string) ([]entity.Operator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	h := string(hash)
	return []entity.Operator{
		{ID: "op-001", Name: "John Doe", Store: "Store A", PINHash: h},
		{ID: "op-002", Name: "Jane Smith", Store: "Store B", PINHash: h},
		{ID: "op-003", Name: "Mike Johnson", Store: "Store B", PINHash: h},
		{ID: "op-004", Name: "Sarah Wilson", Store: "Store A", PINHash: h},
		{ID: "op-005", Name: "Tom Brown", Store: "Store A", PINHash: h},
	}, nil
}
