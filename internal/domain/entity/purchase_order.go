package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. RECEIVED y PARTIALLY_RECEIVED son estados
// derivados del estado de recepción de los renglones; CANCELLED es terminal y
// bloquea recepciones posteriores.
const (
	OrderStatusDraft             = "DRAFT"
	OrderStatusSent              = "SENT"
	OrderStatusPartiallyReceived = "PARTIALLY_RECEIVED"
	OrderStatusReceived          = "RECEIVED"
	OrderStatusCancelled         = "CANCELLED"
)

// PurchaseOrder orden de compra emitida a un proveedor, generada por el
// agregador a partir de solicitudes aprobadas.
type PurchaseOrder struct {
	ID                   string
	TenantID             string
	SupplierID           string
	Status               string
	ExpectedDeliveryDate *time.Time
	Notes                string
	CreatedAt            time.Time
	Items                []PurchaseOrderItem
	Supplier             *Supplier // carga eager para listados
}

// PurchaseOrderItem renglón de una orden. UnitPrice es el costo del producto
// capturado al momento de la agregación (no se recalcula después).
type PurchaseOrderItem struct {
	ID               string
	OrderID          string
	ProductID        string
	Quantity         int64
	UnitPrice        decimal.Decimal
	ReceivedQuantity int64
	Product          *Product
}

// DeriveOrderStatus recalcula el estado de la orden a partir de sus renglones.
// Devuelve el estado actual sin cambios si todavía no se recibió nada.
func DeriveOrderStatus(current string, items []PurchaseOrderItem) string {
	allReceived := true
	anyReceived := false
	for _, it := range items {
		if it.ReceivedQuantity > 0 {
			anyReceived = true
		}
		if it.ReceivedQuantity < it.Quantity {
			allReceived = false
		}
	}
	if allReceived {
		return OrderStatusReceived
	}
	if anyReceived {
		return OrderStatusPartiallyReceived
	}
	return current
}
