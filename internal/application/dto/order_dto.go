package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateOrdersRequest entrada del agregador: solicitudes aprobadas a consolidar.
type GenerateOrdersRequest struct {
	RequestIDs []string `json:"request_ids" validate:"required,min=1"`
}

// ReceiveOrderItem cantidad recibida de un producto de la orden.
// Cantidades <= 0 se ignoran (no es error).
type ReceiveOrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

// ReceiveOrderRequest entrada de la recepción de mercadería. Un payload sin
// renglones es válido: la recepción no modifica nada.
type ReceiveOrderRequest struct {
	Items []ReceiveOrderItem `json:"items" validate:"dive"`
}

// UpdateOrderRequest patch de una orden: solo campos presentes se aplican.
// Status admite únicamente transiciones manuales no derivadas
// (DRAFT→SENT, no terminal→CANCELLED); RECEIVED y PARTIALLY_RECEIVED
// se derivan siempre de los renglones.
type UpdateOrderRequest struct {
	Status               *string    `json:"status"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	Notes                *string    `json:"notes" validate:"omitempty,max=200"`
}

// OrderItemResponse renglón de una orden.
type OrderItemResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	Quantity         int64            `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	ReceivedQuantity int64            `json:"received_quantity"`
	Product          *ProductResponse `json:"product,omitempty"`
}

// OrderResponse salida de una orden de compra.
type OrderResponse struct {
	ID                   string              `json:"id"`
	TenantID             string              `json:"tenant_id"`
	SupplierID           string              `json:"supplier_id"`
	Status               string              `json:"status"`
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date,omitempty"`
	Notes                string              `json:"notes,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	Items                []OrderItemResponse `json:"items,omitempty"`
	Supplier             *SupplierResponse   `json:"supplier,omitempty"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
