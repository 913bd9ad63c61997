package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios dentro de un tenant.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario en el tenant. El rol por defecto es EMPLOYEE.
func (uc *UserUseCase) Create(tenantID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role == "" {
		in.Role = entity.RoleEmployee
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		FullName:     in.FullName,
		IsActive:     true,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario acotado al tenant del caller.
func (uc *UserUseCase) GetByID(id, tenantID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista los usuarios del tenant.
func (uc *UserUseCase) List(tenantID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update aplica un patch del usuario, incluida la contraseña si viene.
func (uc *UserUseCase) Update(id, tenantID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario del tenant.
func (uc *UserUseCase) Delete(id, tenantID string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, tenantID)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleCompany, entity.RoleEmployee:
		return true
	}
	return false
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		TenantID: u.TenantID,
		Username: u.Username,
		Role:     u.Role,
		FullName: u.FullName,
		IsActive: u.IsActive,
	}
}
