package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del libro de inventario sobre
// PostgreSQL. Solo inserta y lee: las entradas son inmutables.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create persiste una entrada del libro.
func (r *InventoryTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, tenant_id, product_id, type, quantity, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TenantID, tx.ProductID, tx.Type, tx.Quantity, tx.ReferenceID, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListByProduct historial del producto, más reciente primero.
func (r *InventoryTransactionRepo) ListByProduct(productID, tenantID string) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT id, tenant_id, product_id, type, quantity, reference_id, created_at
		FROM inventory_transactions
		WHERE product_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.TenantID, &t.ProductID, &t.Type, &t.Quantity, &t.ReferenceID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
