package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo, con SKU único por tenant.
// StockQuantity se muta exclusivamente vía transacciones del libro de
// inventario (nunca por el CRUD del catálogo) y nunca es negativo.
type Product struct {
	ID            string
	TenantID      string
	SKU           string
	Name          string
	Unit          string // unidad de medida ("u", "kg", "lt", ...)
	BasePrice     decimal.Decimal
	CostPrice     decimal.Decimal
	StockQuantity int64
	SupplierID    string
	Supplier      *Supplier // carga eager para listados
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
