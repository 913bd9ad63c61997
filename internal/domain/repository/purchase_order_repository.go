package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	// GetByID carga la orden con renglones (y su producto) y el proveedor.
	GetByID(id, tenantID string) (*entity.PurchaseOrder, error)
	// GetForUpdate igual que GetByID pero bloqueando la fila de la orden
	// (SELECT FOR UPDATE) durante la recepción.
	GetForUpdate(id, tenantID string) (*entity.PurchaseOrder, error)
	// ListByTenant pagina por fecha de creación descendente con el proveedor
	// cargado; status vacío = todas.
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateItemReceived(itemID string, receivedQuantity int64) error
	Update(order *entity.PurchaseOrder) error
	// Delete elimina la orden y sus renglones.
	Delete(id, tenantID string) error
}
