package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// TenantRepository puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List() ([]*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	Delete(id string) error
}
