package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// RequestUseCase administra el ciclo de vida de las solicitudes de compra.
// Máquina de estados: PENDING → {APPROVED, REJECTED, CANCELED}, una sola
// transición; los estados terminales son inmutables.
type RequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.PurchaseRequestRepository
	productRepo repository.ProductRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.PurchaseRequestRepository,
	productRepo repository.ProductRepository,
) *RequestUseCase {
	return &RequestUseCase{txRunner: txRunner, requestRepo: requestRepo, productRepo: productRepo}
}

// CreateRequest crea una solicitud PENDING con sus renglones en una sola
// transacción. Los renglones deben ser no vacíos y con cantidades > 0, y cada
// producto debe existir dentro del tenant.
func (uc *RequestUseCase) CreateRequest(ctx context.Context, tenantID, userID string, items []dto.CreateRequestItem) (*entity.PurchaseRequest, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: la solicitud debe tener al menos un renglón", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(it.ProductID, tenantID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
	}

	request := &entity.PurchaseRequest{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		UserID:    userID,
		Status:    entity.RequestStatusPending,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.RunProcurement(ctx, func(
		requestRepo repository.PurchaseRequestRepository,
		_ repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		if err := requestRepo.Create(request); err != nil {
			return err
		}
		for _, it := range items {
			item := &entity.PurchaseRequestItem{
				ID:        uuid.New().String(),
				RequestID: request.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			}
			if err := requestRepo.CreateItem(item); err != nil {
				return err
			}
			request.Items = append(request.Items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateStatus aplica la única transición permitida de la solicitud.
// Falla con ErrInvalidState si ya está en un estado terminal y con
// ErrInvalidTransition si el destino es PENDING o desconocido.
func (uc *RequestUseCase) UpdateStatus(tenantID, requestID, newStatus string) (*entity.PurchaseRequest, error) {
	if !entity.ValidRequestStatus(newStatus) || newStatus == entity.RequestStatusPending {
		return nil, fmt.Errorf("%w: destino %q", domain.ErrInvalidTransition, newStatus)
	}
	request, err := uc.requestRepo.GetByID(requestID, tenantID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if entity.RequestStatusTerminal(request.Status) {
		return nil, fmt.Errorf("%w: la solicitud ya fue tramitada (%s)", domain.ErrInvalidState, request.Status)
	}
	if err := uc.requestRepo.UpdateStatus(requestID, tenantID, newStatus); err != nil {
		return nil, err
	}
	request.Status = newStatus
	return request, nil
}

// DeleteRequest elimina una solicitud y sus renglones. Solo mientras PENDING.
func (uc *RequestUseCase) DeleteRequest(ctx context.Context, tenantID, requestID string) error {
	request, err := uc.requestRepo.GetByID(requestID, tenantID)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	if request.Status != entity.RequestStatusPending {
		return fmt.Errorf("%w: solo se pueden eliminar solicitudes PENDING", domain.ErrInvalidState)
	}
	return uc.txRunner.RunProcurement(ctx, func(
		requestRepo repository.PurchaseRequestRepository,
		_ repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		return requestRepo.Delete(requestID, tenantID)
	})
}

// ListRequests lista por fecha de creación descendente, con renglones y
// producto+proveedor cargados. status vacío = todas.
func (uc *RequestUseCase) ListRequests(tenantID, status string) ([]*entity.PurchaseRequest, error) {
	if status != "" && !entity.ValidRequestStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	return uc.requestRepo.ListByTenant(tenantID, status)
}

// GetRequest obtiene una solicitud con sus renglones.
func (uc *RequestUseCase) GetRequest(requestID, tenantID string) (*entity.PurchaseRequest, error) {
	request, err := uc.requestRepo.GetByID(requestID, tenantID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return request, nil
}
