package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// InventoryTransactionRepository puerto del libro de inventario.
// Las entradas son inmutables: solo alta y lectura, nunca update ni delete.
type InventoryTransactionRepository interface {
	Create(tx *entity.InventoryTransaction) error
	// ListByProduct devuelve el historial del producto ordenado por fecha de
	// creación descendente.
	ListByProduct(productID, tenantID string) ([]*entity.InventoryTransaction, error)
}
