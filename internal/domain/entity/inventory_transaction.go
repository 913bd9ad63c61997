package entity

import "time"

// Tipos de transacción de inventario.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// InventoryTransaction entrada inmutable del libro de inventario: fuente de
// verdad de los deltas de stock. Quantity siempre positiva; el signo lo da Type.
// ReferenceID enlaza con la orden de compra que la originó (opcional).
type InventoryTransaction struct {
	ID          string
	TenantID    string
	ProductID   string
	Type        string
	Quantity    int64
	ReferenceID *string
	CreatedAt   time.Time
}
