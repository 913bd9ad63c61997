package dto

import "time"

// RegisterTransactionRequest entrada para registrar una transacción manual
// de inventario (IN o OUT).
type RegisterTransactionRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	ReferenceID string `json:"reference_id"`
}

// TransactionResponse salida de una transacción de inventario.
type TransactionResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
