package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera de una orden.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, tenant_id, supplier_id, status, expected_delivery_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.SupplierID, order.Status,
		order.ExpectedDeliveryDate, order.Notes, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de la orden.
func (r *PurchaseOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, order_id, product_id, quantity, unit_price, received_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.ReceivedQuantity,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID carga la orden con renglones (y su producto) y el proveedor.
func (r *PurchaseOrderRepo) GetByID(id, tenantID string) (*entity.PurchaseOrder, error) {
	return r.get(id, tenantID, false)
}

// GetForUpdate igual que GetByID pero bloqueando la fila de la orden
// (SELECT FOR UPDATE) para serializar recepciones concurrentes.
func (r *PurchaseOrderRepo) GetForUpdate(id, tenantID string) (*entity.PurchaseOrder, error) {
	return r.get(id, tenantID, true)
}

func (r *PurchaseOrderRepo) get(id, tenantID string, forUpdate bool) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, tenant_id, supplier_id, status, expected_delivery_date, notes, created_at
		FROM purchase_orders WHERE id = $1 AND tenant_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&o.ID, &o.TenantID, &o.SupplierID, &o.Status, &o.ExpectedDeliveryDate, &o.Notes, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	if err := r.loadSuppliers([]*entity.PurchaseOrder{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByTenant pagina por fecha de creación descendente con el proveedor
// cargado; status vacío = todas. No carga renglones (son para el detalle).
func (r *PurchaseOrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, tenant_id, supplier_id, status, expected_delivery_date, notes, created_at
		FROM purchase_orders
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.TenantID, &o.SupplierID, &o.Status,
			&o.ExpectedDeliveryDate, &o.Notes, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadSuppliers(list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateItemReceived fija la cantidad recibida acumulada del renglón.
func (r *PurchaseOrderRepo) UpdateItemReceived(itemID string, receivedQuantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_items SET received_quantity = $2 WHERE id = $1`,
		itemID, receivedQuantity,
	)
	if err != nil {
		return fmt.Errorf("update purchase order item received: %w", err)
	}
	return nil
}

// Update actualiza la cabecera de la orden.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $3, expected_delivery_date = $4, notes = $5
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.Status, order.ExpectedDeliveryDate, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// Delete elimina la orden y sus renglones.
func (r *PurchaseOrderRepo) Delete(id, tenantID string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_order_items WHERE order_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order items: %w", err)
	}
	_, err = r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) loadItems(order *entity.PurchaseOrder) error {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price, i.received_quantity,
		       p.id, p.tenant_id, p.sku, p.name, p.unit, p.base_price, p.cost_price,
		       p.stock_quantity, p.supplier_id, p.created_at, p.updated_at
		FROM purchase_order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, order.ID)
	if err != nil {
		return fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseOrderItem
		var p entity.Product
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.ReceivedQuantity,
			&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Unit, &p.BasePrice, &p.CostPrice,
			&p.StockQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("scan purchase order item: %w", err)
		}
		item.Product = &p
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

// loadSuppliers carga en una sola consulta los proveedores de las órdenes dadas.
func (r *PurchaseOrderRepo) loadSuppliers(orders []*entity.PurchaseOrder) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.SupplierID)
	}
	query := `SELECT id, tenant_id, name, phone, email, cbu FROM suppliers WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list order suppliers: %w", err)
	}
	defer rows.Close()
	byID := make(map[string]*entity.Supplier)
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.Phone, &s.Email, &s.CBU); err != nil {
			return fmt.Errorf("scan order supplier: %w", err)
		}
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, o := range orders {
		o.Supplier = byID[o.SupplierID]
	}
	return nil
}
