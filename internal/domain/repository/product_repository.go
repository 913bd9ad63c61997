package repository

import (
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
// Todas las operaciones están acotadas al tenant: tenant_id participa en
// cada WHERE. StockQuantity solo se muta vía UpdateStock desde el libro
// de inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id, tenantID string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) durante
	// el read-modify-write del stock.
	GetForUpdate(id, tenantID string) (*entity.Product, error)
	GetByTenantAndSKU(tenantID, sku string) (*entity.Product, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error)
	ListBySupplier(tenantID, supplierID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id, tenantID string, stock int64) error
	Delete(id, tenantID string) error
}
