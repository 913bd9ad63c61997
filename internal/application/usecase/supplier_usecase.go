package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor del tenant.
func (uc *SupplierUseCase) Create(tenantID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		CBU:      in.CBU,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(id, tenantID string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores del tenant.
func (uc *SupplierUseCase) List(tenantID string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Update aplica un patch del proveedor.
func (uc *SupplierUseCase) Update(id, tenantID string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.CBU != nil {
		supplier.CBU = *in.CBU
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina el proveedor si no tiene productos asociados.
func (uc *SupplierUseCase) Delete(id, tenantID string) error {
	supplier, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	products, err := uc.productRepo.ListBySupplier(tenantID, id)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return fmt.Errorf("%w: el proveedor tiene %d productos asociados", domain.ErrConflict, len(products))
	}
	return uc.repo.Delete(id, tenantID)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:       s.ID,
		TenantID: s.TenantID,
		Name:     s.Name,
		Phone:    s.Phone,
		Email:    s.Email,
		CBU:      s.CBU,
	}
}
