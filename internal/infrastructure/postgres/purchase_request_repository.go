package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)

// PurchaseRequestRepo implementación de PurchaseRequestRepository sobre PostgreSQL.
type PurchaseRequestRepo struct {
	q Querier
}

// NewPurchaseRequestRepository construye el adaptador de solicitudes. Pasar pool o tx (Querier).
func NewPurchaseRequestRepository(q Querier) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{q: q}
}

// Create persiste la cabecera de una solicitud.
func (r *PurchaseRequestRepo) Create(request *entity.PurchaseRequest) error {
	query := `
		INSERT INTO purchase_requests (id, tenant_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.TenantID, request.UserID, request.Status, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de la solicitud.
func (r *PurchaseRequestRepo) CreateItem(item *entity.PurchaseRequestItem) error {
	query := `
		INSERT INTO purchase_request_items (id, request_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.RequestID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert purchase request item: %w", err)
	}
	return nil
}

// GetByID carga la solicitud con sus renglones y el producto de cada uno.
func (r *PurchaseRequestRepo) GetByID(id, tenantID string) (*entity.PurchaseRequest, error) {
	query := `
		SELECT id, tenant_id, user_id, status, created_at
		FROM purchase_requests WHERE id = $1 AND tenant_id = $2`
	var req entity.PurchaseRequest
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&req.ID, &req.TenantID, &req.UserID, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request: %w", err)
	}
	if err := r.loadItems([]*entity.PurchaseRequest{&req}); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByIDs carga las solicitudes indicadas del tenant con renglones y
// productos; las ausentes no aparecen en el resultado.
func (r *PurchaseRequestRepo) ListByIDs(tenantID string, ids []string) ([]*entity.PurchaseRequest, error) {
	query := `
		SELECT id, tenant_id, user_id, status, created_at
		FROM purchase_requests WHERE tenant_id = $1 AND id = ANY($2)
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests by ids: %w", err)
	}
	defer rows.Close()
	list, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByTenant lista solicitudes del tenant por fecha descendente; status vacío = todas.
func (r *PurchaseRequestRepo) ListByTenant(tenantID, status string) ([]*entity.PurchaseRequest, error) {
	query := `
		SELECT id, tenant_id, user_id, status, created_at
		FROM purchase_requests
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID, status)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	defer rows.Close()
	list, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus cambia el estado de la solicitud.
func (r *PurchaseRequestRepo) UpdateStatus(id, tenantID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_requests SET status = $3 WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, status,
	)
	if err != nil {
		return fmt.Errorf("update purchase request status: %w", err)
	}
	return nil
}

// Delete elimina la solicitud y sus renglones.
func (r *PurchaseRequestRepo) Delete(id, tenantID string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`DELETE FROM purchase_request_items WHERE request_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase request items: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`DELETE FROM purchase_requests WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete purchase request: %w", err)
	}
	return nil
}

func scanRequests(rows pgx.Rows) ([]*entity.PurchaseRequest, error) {
	var list []*entity.PurchaseRequest
	for rows.Next() {
		var req entity.PurchaseRequest
		if err := rows.Scan(&req.ID, &req.TenantID, &req.UserID, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// loadItems carga en una sola consulta los renglones (con su producto) de las
// solicitudes dadas.
func (r *PurchaseRequestRepo) loadItems(requests []*entity.PurchaseRequest) error {
	if len(requests) == 0 {
		return nil
	}
	byID := make(map[string]*entity.PurchaseRequest, len(requests))
	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		byID[req.ID] = req
		ids = append(ids, req.ID)
	}
	query := `
		SELECT i.id, i.request_id, i.product_id, i.quantity,
		       p.id, p.tenant_id, p.sku, p.name, p.unit, p.base_price, p.cost_price,
		       p.stock_quantity, p.supplier_id, p.created_at, p.updated_at
		FROM purchase_request_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.request_id = ANY($1)
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list purchase request items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseRequestItem
		var p entity.Product
		if err := rows.Scan(&item.ID, &item.RequestID, &item.ProductID, &item.Quantity,
			&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Unit, &p.BasePrice, &p.CostPrice,
			&p.StockQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("scan purchase request item: %w", err)
		}
		item.Product = &p
		if req, ok := byID[item.RequestID]; ok {
			req.Items = append(req.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return r.loadItemSuppliers(requests)
}

// loadItemSuppliers carga en una sola consulta los proveedores de los
// productos de los renglones dados.
func (r *PurchaseRequestRepo) loadItemSuppliers(requests []*entity.PurchaseRequest) error {
	var products []*entity.Product
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, req := range requests {
		for i := range req.Items {
			p := req.Items[i].Product
			if p == nil {
				continue
			}
			products = append(products, p)
			if _, ok := seen[p.SupplierID]; !ok {
				seen[p.SupplierID] = struct{}{}
				ids = append(ids, p.SupplierID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	query := `SELECT id, tenant_id, name, phone, email, cbu FROM suppliers WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list request item suppliers: %w", err)
	}
	defer rows.Close()
	byID := make(map[string]*entity.Supplier)
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.Phone, &s.Email, &s.CBU); err != nil {
			return fmt.Errorf("scan request item supplier: %w", err)
		}
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, p := range products {
		p.Supplier = byID[p.SupplierID]
	}
	return nil
}
