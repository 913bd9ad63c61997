package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ProductCache cache de lectura del catálogo. Puede ser nil (sin cache).
type ProductCache interface {
	Get(ctx context.Context, tenantID, productID string) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, tenantID, productID string) error
}

// ProductUseCase casos de uso CRUD para productos. StockQuantity y su historial
// se manejan vía el libro de inventario, nunca desde acá.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	cache        ProductCache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, supplierRepo repository.SupplierRepository, cache ProductCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo, cache: cache}
}

// Create crea un producto con stock 0. El SKU es único dentro del tenant.
func (uc *ProductUseCase) Create(ctx context.Context, tenantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByTenantAndSKU(tenantID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID, tenantID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		SKU:           in.SKU,
		Name:          in.Name,
		Unit:          in.Unit,
		BasePrice:     in.BasePrice,
		CostPrice:     in.CostPrice,
		StockQuantity: 0,
		SupplierID:    in.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto, intentando primero la cache.
func (uc *ProductUseCase) GetByID(ctx context.Context, id, tenantID string) (*dto.ProductResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, tenantID, id); err == nil && cached != nil {
			return toProductResponse(cached), nil
		}
	}
	product, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, product)
	}
	return toProductResponse(product), nil
}

// Update aplica un patch del producto. No permite tocar StockQuantity.
func (uc *ProductUseCase) Update(ctx context.Context, id, tenantID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.BasePrice != nil {
		product.BasePrice = *in.BasePrice
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID, tenantID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrInvalidInput
		}
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, tenantID, id)
	return toProductResponse(product), nil
}

// List lista productos del tenant con paginación.
func (uc *ProductUseCase) List(tenantID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina el producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id, tenantID string) error {
	product, err := uc.repo.GetByID(id, tenantID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id, tenantID); err != nil {
		return err
	}
	uc.invalidate(ctx, tenantID, id)
	return nil
}

func (uc *ProductUseCase) invalidate(ctx context.Context, tenantID, id string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, tenantID, id)
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		SKU:           p.SKU,
		Name:          p.Name,
		Unit:          p.Unit,
		BasePrice:     p.BasePrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
