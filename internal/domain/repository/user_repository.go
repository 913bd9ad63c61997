package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ListByTenant(tenantID string) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id, tenantID string) error
}
