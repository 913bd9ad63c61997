package dto

import "time"

// CreateRequestItem renglón de una solicitud de compra nueva.
type CreateRequestItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateRequestRequest entrada para crear una solicitud de compra.
type CreateRequestRequest struct {
	Items []CreateRequestItem `json:"items" validate:"required,min=1,dive"`
}

// RequestItemResponse renglón de una solicitud con su producto.
type RequestItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// RequestResponse salida de una solicitud de compra.
type RequestResponse struct {
	ID        string                `json:"id"`
	TenantID  string                `json:"tenant_id"`
	UserID    string                `json:"user_id"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	Items     []RequestItemResponse `json:"items"`
}
