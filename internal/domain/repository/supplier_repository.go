package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id, tenantID string) (*entity.Supplier, error)
	ListByTenant(tenantID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id, tenantID string) error
}
