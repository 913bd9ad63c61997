package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// LedgerUseCase registra transacciones de inventario de forma transaccional.
// El libro es la fuente de verdad del stock: cada registro bloquea la fila del
// producto (SELECT FOR UPDATE), aplica el delta y persiste la entrada en la
// misma transacción, con Commit/Rollback total.
type LedgerUseCase struct {
	txRunner   TxRunner
	ledgerRepo repository.InventoryTransactionRepository
	publisher  events.Publisher
	log        *logger.Logger
}

// NewLedgerUseCase construye el caso de uso. publisher puede ser nil (sin bus).
func NewLedgerUseCase(
	txRunner TxRunner,
	ledgerRepo repository.InventoryTransactionRepository,
	publisher events.Publisher,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo, publisher: publisher, log: log}
}

// TransactionInput entrada para registrar una transacción de inventario.
type TransactionInput struct {
	TenantID    string
	ProductID   string
	Type        string // IN | OUT
	Quantity    int64  // siempre > 0; el signo lo da Type
	ReferenceID string // orden de compra que la origina (opcional)
}

// Register inicia una transacción, aplica el delta de stock y persiste la
// entrada del libro. OUT con stock insuficiente falla con ErrInsufficientStock
// sin consumo parcial.
func (uc *LedgerUseCase) Register(ctx context.Context, input TransactionInput) (*entity.InventoryTransaction, error) {
	var created *entity.InventoryTransaction
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.InventoryTransactionRepository,
	) error {
		tx, err := uc.RegisterInTx(productRepo, ledgerRepo, input)
		if err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, created)
	return created, nil
}

// RegisterInTx ejecuta el registro usando los repositorios proporcionados
// (misma transacción del caller). Lo usa el motor de recepción de órdenes para
// que el impacto en inventario y la actualización de renglones compartan tx.
func (uc *LedgerUseCase) RegisterInTx(
	productRepo repository.ProductRepository,
	ledgerRepo repository.InventoryTransactionRepository,
	input TransactionInput,
) (*entity.InventoryTransaction, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.TransactionTypeIN && input.Type != entity.TransactionTypeOUT {
		return nil, domain.ErrInvalidInput
	}

	// Bloquea la fila del producto para evitar lost updates entre IN/OUT concurrentes
	product, err := productRepo.GetForUpdate(input.ProductID, input.TenantID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newStock := product.StockQuantity
	switch input.Type {
	case entity.TransactionTypeIN:
		newStock += input.Quantity
	case entity.TransactionTypeOUT:
		if product.StockQuantity < input.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		newStock -= input.Quantity
	}

	if err := productRepo.UpdateStock(product.ID, product.TenantID, newStock); err != nil {
		return nil, err
	}

	var refID *string
	if input.ReferenceID != "" {
		refID = &input.ReferenceID
	}
	tx := &entity.InventoryTransaction{
		ID:          uuid.New().String(),
		TenantID:    input.TenantID,
		ProductID:   input.ProductID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		ReferenceID: refID,
		CreatedAt:   time.Now(),
	}
	if err := ledgerRepo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetProductHistory devuelve el historial del producto, más reciente primero.
func (uc *LedgerUseCase) GetProductHistory(productID, tenantID string) ([]*entity.InventoryTransaction, error) {
	return uc.ledgerRepo.ListByProduct(productID, tenantID)
}

// publish emite el evento post-commit; un fallo solo se loguea.
func (uc *LedgerUseCase) publish(ctx context.Context, tx *entity.InventoryTransaction) {
	if uc.publisher == nil {
		return
	}
	ev := events.MovementRegistered{
		Type:       events.TypeMovementRegistered,
		TenantID:   tx.TenantID,
		ProductID:  tx.ProductID,
		Movement:   tx.Type,
		Quantity:   tx.Quantity,
		OccurredAt: tx.CreatedAt,
	}
	if tx.ReferenceID != nil {
		ev.ReferenceID = *tx.ReferenceID
	}
	if err := uc.publisher.Publish(ctx, tx.ProductID, ev); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("product_id", tx.ProductID).Msg("no se pudo publicar evento de inventario")
	}
}
