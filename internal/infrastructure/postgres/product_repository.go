package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, tenant_id, sku, name, unit, base_price, cost_price, stock_quantity, supplier_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Stock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, sku, name, unit, base_price, cost_price, stock_quantity, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.TenantID, product.SKU, product.Name, product.Unit,
		product.BasePrice, product.CostPrice, product.StockQuantity, product.SupplierID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Unit, &p.BasePrice,
		&p.CostPrice, &p.StockQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto del tenant.
func (r *ProductRepo) GetByID(id, tenantID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND tenant_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, tenantID))
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(id, tenantID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, tenantID))
}

// GetByTenantAndSKU obtiene un producto por tenant y SKU.
func (r *ProductRepo) GetByTenantAndSKU(tenantID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, tenantID, sku))
}

// ListByTenant lista productos del tenant con paginación.
func (r *ProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListBySupplier lista los productos del tenant asociados a un proveedor.
func (r *ProductRepo) ListBySupplier(tenantID, supplierID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 AND supplier_id = $2 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products by supplier: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *ProductRepo) scanList(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Unit, &p.BasePrice,
			&p.CostPrice, &p.StockQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto. No toca stock_quantity (se maneja vía inventario).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, unit = $4, base_price = $5, cost_price = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.TenantID, product.Name, product.Unit,
		product.BasePrice, product.CostPrice, product.SupplierID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del producto (usado por el libro de inventario dentro de su tx).
func (r *ProductRepo) UpdateStock(id, tenantID string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $3, updated_at = now() WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto del tenant.
func (r *ProductRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
