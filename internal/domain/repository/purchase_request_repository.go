package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PurchaseRequestRepository puerto de persistencia para solicitudes de compra.
type PurchaseRequestRepository interface {
	Create(request *entity.PurchaseRequest) error
	CreateItem(item *entity.PurchaseRequestItem) error
	// GetByID carga la solicitud con sus renglones y el producto de cada uno.
	GetByID(id, tenantID string) (*entity.PurchaseRequest, error)
	// ListByIDs carga las solicitudes indicadas (con renglones y productos)
	// dentro del tenant; las ausentes simplemente no aparecen en el resultado.
	ListByIDs(tenantID string, ids []string) ([]*entity.PurchaseRequest, error)
	// ListByTenant lista por fecha de creación descendente; status vacío = todas.
	ListByTenant(tenantID, status string) ([]*entity.PurchaseRequest, error)
	UpdateStatus(id, tenantID, status string) error
	// Delete elimina la solicitud y sus renglones.
	Delete(id, tenantID string) error
}
