package procurement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// OrderUseCase agrega solicitudes aprobadas en órdenes de compra por proveedor
// y administra el ciclo de vida de las órdenes, incluida la recepción de
// mercadería con impacto en inventario.
type OrderUseCase struct {
	txRunner   TxRunner
	orderRepo  repository.PurchaseOrderRepository
	tenantRepo repository.TenantRepository
	ledger     *inventory.LedgerUseCase
	pdf        OrderPDFGenerator
	publisher  events.Publisher
	log        *logger.Logger
}

// NewOrderUseCase construye el caso de uso. publisher y pdf pueden ser nil.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	tenantRepo repository.TenantRepository,
	ledger *inventory.LedgerUseCase,
	pdf OrderPDFGenerator,
	publisher events.Publisher,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:   txRunner,
		orderRepo:  orderRepo,
		tenantRepo: tenantRepo,
		ledger:     ledger,
		pdf:        pdf,
		publisher:  publisher,
		log:        log,
	}
}

// supplierGroup demanda consolidada de un proveedor durante la agregación.
// Conserva el orden de primera aparición de los productos para que la salida
// sea determinística.
type supplierGroup struct {
	productOrder []string
	quantities   map[string]int64
	unitPrices   map[string]decimal.Decimal
}

// CreateOrdersFromRequests consolida las solicitudes aprobadas indicadas en
// órdenes DRAFT: una orden por proveedor referenciado, un renglón por producto
// con la demanda sumada entre solicitudes y el costo del producto capturado al
// momento de la agregación. Toda la creación ocurre en una única transacción.
// Las solicitudes origen permanecen APPROVED (re-ejecutar la agregación sobre
// las mismas solicitudes genera órdenes duplicadas; evitarlo es responsabilidad
// del caller).
func (uc *OrderUseCase) CreateOrdersFromRequests(ctx context.Context, tenantID string, requestIDs []string) ([]*entity.PurchaseOrder, error) {
	if len(requestIDs) == 0 {
		return nil, fmt.Errorf("%w: se debe indicar al menos una solicitud", domain.ErrInvalidInput)
	}

	var created []*entity.PurchaseOrder
	err := uc.txRunner.RunProcurement(ctx, func(
		requestRepo repository.PurchaseRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		requests, err := requestRepo.ListByIDs(tenantID, requestIDs)
		if err != nil {
			return err
		}
		if len(requests) != len(requestIDs) {
			found := make(map[string]bool, len(requests))
			for _, r := range requests {
				found[r.ID] = true
			}
			var missing []string
			for _, id := range requestIDs {
				if !found[id] {
					missing = append(missing, id)
				}
			}
			return fmt.Errorf("%w: solicitudes no encontradas: %s", domain.ErrNotFound, strings.Join(missing, ", "))
		}
		for _, req := range requests {
			if req.Status != entity.RequestStatusApproved {
				return fmt.Errorf("%w: la solicitud %s no está aprobada (estado %s)", domain.ErrInvalidState, req.ID, req.Status)
			}
		}

		// Agrupación por (proveedor, producto) sumando cantidades entre solicitudes
		supplierOrder := make([]string, 0)
		groups := make(map[string]*supplierGroup)
		for _, req := range requests {
			for _, item := range req.Items {
				product := item.Product
				if product == nil {
					return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
				}
				if product.SupplierID == "" {
					return fmt.Errorf("%w: el producto %s no tiene proveedor asignado", domain.ErrInvalidInput, product.Name)
				}
				group, ok := groups[product.SupplierID]
				if !ok {
					group = &supplierGroup{
						quantities: make(map[string]int64),
						unitPrices: make(map[string]decimal.Decimal),
					}
					groups[product.SupplierID] = group
					supplierOrder = append(supplierOrder, product.SupplierID)
				}
				if _, seen := group.quantities[product.ID]; !seen {
					group.productOrder = append(group.productOrder, product.ID)
					group.unitPrices[product.ID] = product.CostPrice
				}
				group.quantities[product.ID] += item.Quantity
			}
		}

		now := time.Now()
		for _, supplierID := range supplierOrder {
			group := groups[supplierID]
			order := &entity.PurchaseOrder{
				ID:         uuid.New().String(),
				TenantID:   tenantID,
				SupplierID: supplierID,
				Status:     entity.OrderStatusDraft,
				Notes:      fmt.Sprintf("Generada automáticamente desde %d solicitudes", len(requestIDs)),
				CreatedAt:  now,
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			for _, productID := range group.productOrder {
				item := &entity.PurchaseOrderItem{
					ID:               uuid.New().String(),
					OrderID:          order.ID,
					ProductID:        productID,
					Quantity:         group.quantities[productID],
					UnitPrice:        group.unitPrices[productID],
					ReceivedQuantity: 0,
				}
				if err := orderRepo.CreateItem(item); err != nil {
					return err
				}
				order.Items = append(order.Items, *item)
			}
			created = append(created, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, order := range created {
		uc.publishCreated(ctx, order)
	}
	return created, nil
}

// ListOrders pagina por fecha de creación descendente con el proveedor cargado.
func (uc *OrderUseCase) ListOrders(tenantID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.orderRepo.ListByTenant(tenantID, status, limit, offset)
}

// GetOrder obtiene una orden con renglones (y producto) y proveedor.
func (uc *OrderUseCase) GetOrder(orderID, tenantID string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID, tenantID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// UpdateOrder aplica un patch de la orden campo por campo. Las ediciones
// manuales de estado están restringidas a transiciones no derivadas:
// DRAFT→SENT y no terminal→CANCELLED; RECEIVED y PARTIALLY_RECEIVED solo se
// alcanzan vía recepción.
func (uc *OrderUseCase) UpdateOrder(tenantID, orderID string, patch dto.UpdateOrderRequest) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID, tenantID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if patch.Status != nil && *patch.Status != order.Status {
		if !manualTransitionAllowed(order.Status, *patch.Status) {
			return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, order.Status, *patch.Status)
		}
		order.Status = *patch.Status
	}
	if patch.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = patch.ExpectedDeliveryDate
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// manualTransitionAllowed transiciones de estado editables a mano.
func manualTransitionAllowed(current, target string) bool {
	switch target {
	case entity.OrderStatusSent:
		return current == entity.OrderStatusDraft
	case entity.OrderStatusCancelled:
		return current != entity.OrderStatusCancelled && current != entity.OrderStatusReceived
	}
	return false
}

// DeleteOrder elimina la orden y sus renglones. Solo mientras DRAFT o SENT.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, tenantID, orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID, tenantID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusDraft && order.Status != entity.OrderStatusSent {
		return fmt.Errorf("%w: solo se pueden eliminar órdenes DRAFT o SENT", domain.ErrInvalidState)
	}
	return uc.txRunner.RunProcurement(ctx, func(
		_ repository.PurchaseRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
		_ repository.InventoryTransactionRepository,
	) error {
		return orderRepo.Delete(orderID, tenantID)
	})
}

// OrderPDF genera la representación gráfica de la orden para el proveedor.
func (uc *OrderUseCase) OrderPDF(ctx context.Context, tenantID, orderID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: generación de PDF no configurada", domain.ErrInvalidState)
	}
	order, err := uc.GetOrder(orderID, tenantID)
	if err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateOrderPDF(ctx, order, tenant)
}

func (uc *OrderUseCase) publishCreated(ctx context.Context, order *entity.PurchaseOrder) {
	if uc.publisher == nil {
		return
	}
	ev := events.OrderCreated{
		Type:       events.TypeOrderCreated,
		TenantID:   order.TenantID,
		OrderID:    order.ID,
		SupplierID: order.SupplierID,
		ItemCount:  len(order.Items),
		OccurredAt: order.CreatedAt,
	}
	if err := uc.publisher.Publish(ctx, order.ID, ev); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo publicar evento de orden creada")
	}
}
