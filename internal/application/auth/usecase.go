// Package auth autenticación por credenciales y emisión de tokens JWT.
package auth

import (
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase login con usuario y contraseña.
type UseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	cfg        Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, cfg Config) *UseCase {
	return &UseCase{userRepo: userRepo, tenantRepo: tenantRepo, cfg: cfg}
}

// Login valida credenciales y estado de la cuenta y emite el token.
// Credenciales inválidas y usuario inexistente responden igual para no revelar
// qué usuarios existen. Un tenant inactivo o con suscripción vencida bloquea el
// acceso de COMPANY y EMPLOYEE; el ADMIN no pertenece a un tenant comercial.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: usuario desactivado", domain.ErrForbidden)
	}

	if user.Role != entity.RoleAdmin {
		tenant, err := uc.tenantRepo.GetByID(user.TenantID)
		if err != nil {
			return nil, err
		}
		if tenant == nil || !tenant.IsActive {
			return nil, fmt.Errorf("%w: empresa desactivada", domain.ErrForbidden)
		}
		if tenant.SubscriptionEnd != nil && tenant.SubscriptionEnd.Before(time.Now()) {
			return nil, fmt.Errorf("%w: suscripción vencida", domain.ErrForbidden)
		}
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.TenantID, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			TenantID: user.TenantID,
			Username: user.Username,
			Role:     user.Role,
			FullName: user.FullName,
			IsActive: user.IsActive,
		},
	}, nil
}
