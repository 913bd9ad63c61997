package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PaymentRepository puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByTenant(tenantID string) ([]*entity.Payment, error)
	List() ([]*entity.Payment, error)
	UpdateStatus(id, status string) error
}
