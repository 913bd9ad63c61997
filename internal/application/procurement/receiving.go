package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ReceiveOrder procesa una recepción de mercadería contra la orden. Las
// cantidades son aditivas sobre lo ya recibido; cada producto recibido genera
// una transacción IN del libro de inventario en la misma transacción de BD que
// la actualización de los renglones, con la orden como referencia. Al final se
// recalcula el estado de la orden a partir de sus renglones. Se admite
// sobre-recepción (recibido > pedido): se registra tal cual, sin error ni tope.
// Una recepción sin renglones no modifica nada y devuelve la orden como está.
func (uc *OrderUseCase) ReceiveOrder(ctx context.Context, tenantID, orderID string, input dto.ReceiveOrderRequest) (*entity.PurchaseOrder, error) {
	var received *entity.PurchaseOrder
	err := uc.txRunner.RunProcurement(ctx, func(
		_ repository.PurchaseRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		ledgerRepo repository.InventoryTransactionRepository,
	) error {
		// Bloquea la orden para serializar recepciones concurrentes
		order, err := orderRepo.GetForUpdate(orderID, tenantID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.OrderStatusCancelled {
			return fmt.Errorf("%w: no se puede recibir una orden cancelada", domain.ErrInvalidState)
		}

		itemsByProduct := make(map[string]*entity.PurchaseOrderItem, len(order.Items))
		for i := range order.Items {
			itemsByProduct[order.Items[i].ProductID] = &order.Items[i]
		}

		for _, line := range input.Items {
			if line.Quantity <= 0 {
				continue // renglones sin cantidad se ignoran
			}
			item, ok := itemsByProduct[line.ProductID]
			if !ok {
				return fmt.Errorf("%w: el producto %s no pertenece a la orden", domain.ErrInvalidInput, line.ProductID)
			}
			item.ReceivedQuantity += line.Quantity
			if err := orderRepo.UpdateItemReceived(item.ID, item.ReceivedQuantity); err != nil {
				return err
			}
			if _, err := uc.ledger.RegisterInTx(productRepo, ledgerRepo, inventory.TransactionInput{
				TenantID:    tenantID,
				ProductID:   line.ProductID,
				Type:        entity.TransactionTypeIN,
				Quantity:    line.Quantity,
				ReferenceID: order.ID,
			}); err != nil {
				return err
			}
		}

		newStatus := entity.DeriveOrderStatus(order.Status, order.Items)
		if newStatus != order.Status {
			order.Status = newStatus
			if err := orderRepo.Update(order); err != nil {
				return err
			}
		}
		received = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishReceived(ctx, received)
	return received, nil
}

func (uc *OrderUseCase) publishReceived(ctx context.Context, order *entity.PurchaseOrder) {
	if uc.publisher == nil {
		return
	}
	ev := events.OrderReceived{
		Type:       events.TypeOrderReceived,
		TenantID:   order.TenantID,
		OrderID:    order.ID,
		Status:     order.Status,
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, order.ID, ev); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo publicar evento de recepción")
	}
}
