package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

const tenantColumns = `id, name, plan_type, is_active, subscription_end, contact_name, phone_number, contact_email, created_at`

// TenantRepo implementación de TenantRepository sobre PostgreSQL.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de empresas. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, plan_type, is_active, subscription_end, contact_name, phone_number, contact_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.PlanType, tenant.IsActive, tenant.SubscriptionEnd,
		tenant.ContactName, tenant.PhoneNumber, tenant.ContactEmail, tenant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.PlanType, &t.IsActive, &t.SubscriptionEnd,
		&t.ContactName, &t.PhoneNumber, &t.ContactEmail, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// List lista todas las empresas.
func (r *TenantRepo) List() ([]*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.PlanType, &t.IsActive, &t.SubscriptionEnd,
			&t.ContactName, &t.PhoneNumber, &t.ContactEmail, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una empresa.
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, plan_type = $3, is_active = $4, subscription_end = $5,
		       contact_name = $6, phone_number = $7, contact_email = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.PlanType, tenant.IsActive, tenant.SubscriptionEnd,
		tenant.ContactName, tenant.PhoneNumber, tenant.ContactEmail,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// Delete elimina una empresa.
func (r *TenantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}
