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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, tenant_id, name, phone, email, cbu)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.TenantID, supplier.Name, supplier.Phone, supplier.Email, supplier.CBU,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor del tenant.
func (r *SupplierRepo) GetByID(id, tenantID string) (*entity.Supplier, error) {
	query := `SELECT id, tenant_id, name, phone, email, cbu FROM suppliers WHERE id = $1 AND tenant_id = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.Phone, &s.Email, &s.CBU,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByTenant lista los proveedores del tenant ordenados por nombre.
func (r *SupplierRepo) ListByTenant(tenantID string) ([]*entity.Supplier, error) {
	query := `SELECT id, tenant_id, name, phone, email, cbu FROM suppliers WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.Phone, &s.Email, &s.CBU); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $3, phone = $4, email = $5, cbu = $6
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.TenantID, supplier.Name, supplier.Phone, supplier.Email, supplier.CBU,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor del tenant.
func (r *SupplierRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM suppliers WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
