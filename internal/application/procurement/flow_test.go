package procurement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// Flujo completo de compras: dos empleados piden los mismos productos, la
// empresa aprueba, el agregador consolida una orden por proveedor, la
// mercadería llega en dos tandas y el stock termina reflejando lo recibido.
func TestFlujoCompleto_SolicitudOrdenRecepcion(t *testing.T) {
	ctx := context.Background()

	env := buildOrderEnv(
		testProduct(testProductID1, testSupplierA, "SKU-1", 120.50, 0),
		testProduct(testProductID2, testSupplierA, "SKU-2", 80, 0),
		testProduct(testProductID3, testSupplierB, "SKU-3", 300, 0),
	)
	requestUC := procurement.NewRequestUseCase(
		&fakeTxRunner{
			requestRepo: env.requestRepo,
			orderRepo:   env.orderRepo,
			productRepo: env.productRepo,
			ledgerRepo:  env.ledgerRepo,
		},
		env.requestRepo, env.productRepo,
	)

	// 1. Dos solicitudes con demanda superpuesta
	req1, err := requestUC.CreateRequest(ctx, testTenantID, testUserID, []dto.CreateRequestItem{
		{ProductID: testProductID1, Quantity: 10},
		{ProductID: testProductID3, Quantity: 2},
	})
	require.NoError(t, err)
	req2, err := requestUC.CreateRequest(ctx, testTenantID, testUserID, []dto.CreateRequestItem{
		{ProductID: testProductID1, Quantity: 5},
		{ProductID: testProductID2, Quantity: 8},
	})
	require.NoError(t, err)

	// 2. La empresa aprueba ambas
	for _, id := range []string{req1.ID, req2.ID} {
		_, err := requestUC.UpdateStatus(testTenantID, id, entity.RequestStatusApproved)
		require.NoError(t, err)
	}

	// 3. Agregación: proveedor A consolida los productos 1 y 2, proveedor B el 3
	orders, err := env.uc.CreateOrdersFromRequests(ctx, testTenantID, []string{req1.ID, req2.ID})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	orderA, orderB := orders[0], orders[1]
	require.Equal(t, testSupplierA, orderA.SupplierID)
	require.Equal(t, testSupplierB, orderB.SupplierID)
	require.Len(t, orderA.Items, 2)
	assert.Equal(t, int64(15), orderA.Items[0].Quantity, "10 + 5 del producto 1")
	assert.Equal(t, int64(8), orderA.Items[1].Quantity)

	// 4. Primera tanda: llega la mitad del producto 1
	received, err := env.uc.ReceiveOrder(ctx, testTenantID, orderA.ID, dto.ReceiveOrderRequest{
		Items: []dto.ReceiveOrderItem{{ProductID: testProductID1, Quantity: 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPartiallyReceived, received.Status)

	// 5. Segunda tanda: completa ambos renglones
	received, err = env.uc.ReceiveOrder(ctx, testTenantID, orderA.ID, dto.ReceiveOrderRequest{
		Items: []dto.ReceiveOrderItem{
			{ProductID: testProductID1, Quantity: 8},
			{ProductID: testProductID2, Quantity: 8},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReceived, received.Status)

	// 6. El stock refleja lo recibido y el libro lo respalda entrada por entrada
	p1, _ := env.productRepo.GetByID(testProductID1, testTenantID)
	p2, _ := env.productRepo.GetByID(testProductID2, testTenantID)
	p3, _ := env.productRepo.GetByID(testProductID3, testTenantID)
	assert.Equal(t, int64(15), p1.StockQuantity)
	assert.Equal(t, int64(8), p2.StockQuantity)
	assert.Equal(t, int64(0), p3.StockQuantity, "la orden del proveedor B sigue sin recibirse")

	history, err := inventory.NewLedgerUseCase(nil, env.ledgerRepo, nil, logger.Nop()).
		GetProductHistory(testProductID1, testTenantID)
	require.NoError(t, err)
	require.Len(t, history, 2, "dos recepciones → dos entradas del libro")
	for _, e := range history {
		assert.Equal(t, entity.TransactionTypeIN, e.Type)
		require.NotNil(t, e.ReferenceID)
		assert.Equal(t, orderA.ID, *e.ReferenceID, "cada entrada referencia la orden")
	}

	// La orden del proveedor B quedó DRAFT, lista para enviarse
	stored, err := env.uc.GetOrder(orderB.ID, testTenantID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, stored.Status)
}
