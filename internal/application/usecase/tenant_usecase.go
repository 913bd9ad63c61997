package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// TenantUseCase administración de empresas y su suscripción.
type TenantUseCase struct {
	repo     repository.TenantRepository
	userRepo repository.UserRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository, userRepo repository.UserRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, userRepo: userRepo}
}

// Create da de alta una empresa junto con su usuario COMPANY inicial.
// FREE_TRIAL_1_MONTH arranca con un mes de suscripción; los planes pagos
// quedan sin vencimiento hasta que un pago sea verificado.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.PlanType == "" {
		in.PlanType = entity.PlanFreeTrial
	}
	if !validPlan(in.PlanType) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(in.CompanyUser.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	tenant := &entity.Tenant{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PlanType:     in.PlanType,
		IsActive:     true,
		ContactName:  in.ContactName,
		PhoneNumber:  in.PhoneNumber,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
	}
	if in.PlanType == entity.PlanFreeTrial {
		end := now.AddDate(0, 1, 0)
		tenant.SubscriptionEnd = &end
	}
	if err := uc.repo.Create(tenant); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.CompanyUser.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Username:     in.CompanyUser.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleCompany,
		FullName:     in.CompanyUser.FullName,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetByID obtiene una empresa.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(tenant), nil
}

// List lista todas las empresas (solo ADMIN).
func (uc *TenantUseCase) List() ([]dto.TenantResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTenantResponse(t))
	}
	return out, nil
}

// Update aplica un patch de la empresa.
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		tenant.Name = *in.Name
	}
	if in.PlanType != nil {
		if !validPlan(*in.PlanType) {
			return nil, domain.ErrInvalidInput
		}
		tenant.PlanType = *in.PlanType
	}
	if in.IsActive != nil {
		tenant.IsActive = *in.IsActive
	}
	if in.ContactName != nil {
		tenant.ContactName = *in.ContactName
	}
	if in.PhoneNumber != nil {
		tenant.PhoneNumber = *in.PhoneNumber
	}
	if in.ContactEmail != nil {
		tenant.ContactEmail = *in.ContactEmail
	}
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// ExtendSubscription corre el vencimiento de la suscripción la cantidad de
// meses indicada, desde el vencimiento vigente si todavía no pasó o desde hoy
// si ya venció.
func (uc *TenantUseCase) ExtendSubscription(id string, months int) error {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	base := time.Now()
	if tenant.SubscriptionEnd != nil && tenant.SubscriptionEnd.After(base) {
		base = *tenant.SubscriptionEnd
	}
	end := base.AddDate(0, months, 0)
	tenant.SubscriptionEnd = &end
	tenant.IsActive = true
	return uc.repo.Update(tenant)
}

// Delete elimina la empresa.
func (uc *TenantUseCase) Delete(id string) error {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validPlan(plan string) bool {
	switch plan {
	case entity.PlanFreeForever, entity.PlanFreeTrial, entity.PlanPaidMonthly, entity.PlanPaidYearly:
		return true
	}
	return false
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:              t.ID,
		Name:            t.Name,
		PlanType:        t.PlanType,
		IsActive:        t.IsActive,
		SubscriptionEnd: t.SubscriptionEnd,
		ContactName:     t.ContactName,
		PhoneNumber:     t.PhoneNumber,
		ContactEmail:    t.ContactEmail,
		CreatedAt:       t.CreatedAt,
	}
}
