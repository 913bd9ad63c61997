// Package events define el puerto de publicación de eventos de dominio.
// Los casos de uso publican después del commit; la publicación es best effort
// (un fallo se loguea y no revierte la operación).
package events

import (
	"context"
	"time"
)

// Nombres de evento publicados al bus.
const (
	TypeMovementRegistered = "inventory.movement.registered"
	TypeOrderCreated       = "procurement.order.created"
	TypeOrderReceived      = "procurement.order.received"
)

// Publisher puerto de publicación. La key particiona por entidad.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// MovementRegistered se emite al registrar una transacción de inventario.
type MovementRegistered struct {
	Type        string    `json:"type"`
	TenantID    string    `json:"tenant_id"`
	ProductID   string    `json:"product_id"`
	Movement    string    `json:"movement"` // IN | OUT
	Quantity    int64     `json:"quantity"`
	ReferenceID string    `json:"reference_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderCreated se emite por cada orden generada por el agregador.
type OrderCreated struct {
	Type       string    `json:"type"`
	TenantID   string    `json:"tenant_id"`
	OrderID    string    `json:"order_id"`
	SupplierID string    `json:"supplier_id"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderReceived se emite al procesar una recepción (parcial o total).
type OrderReceived struct {
	Type       string    `json:"type"`
	TenantID   string    `json:"tenant_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
