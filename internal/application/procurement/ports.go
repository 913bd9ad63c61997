package procurement

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del flujo de compras atados a esa tx. Toda operación
// multi-escritura (alta de solicitud, agregación, recepción, borrados en
// cascada) pasa por acá: o se persiste todo o no se persiste nada.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		requestRepo repository.PurchaseRequestRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		ledgerRepo repository.InventoryTransactionRepository,
	) error) error
}

// OrderPDFGenerator genera la representación gráfica de una orden de compra
// para enviar al proveedor.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, tenant *entity.Tenant) ([]byte, error)
}
