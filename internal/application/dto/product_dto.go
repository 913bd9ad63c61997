package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock inicia en 0 y
// solo se mueve vía transacciones de inventario.
type CreateProductRequest struct {
	SKU        string          `json:"sku" validate:"required,min=1,max=64"`
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Unit       string          `json:"unit"`
	BasePrice  decimal.Decimal `json:"base_price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SupplierID string          `json:"supplier_id" validate:"required"`
}

// UpdateProductRequest patch de un producto: solo campos presentes se aplican.
// StockQuantity queda fuera a propósito (se maneja vía inventario).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Unit       *string          `json:"unit"`
	BasePrice  *decimal.Decimal `json:"base_price"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
	SupplierID *string          `json:"supplier_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Unit          string            `json:"unit"`
	BasePrice     decimal.Decimal   `json:"base_price"`
	CostPrice     decimal.Decimal   `json:"cost_price"`
	StockQuantity int64             `json:"stock_quantity"`
	SupplierID    string            `json:"supplier_id"`
	Supplier      *SupplierResponse `json:"supplier,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
