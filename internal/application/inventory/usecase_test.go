package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTenantID  = "00000000-0000-0000-0000-00000000000a"
	testProductID = "00000000-0000-0000-0000-00000000000b"
)

// fakeProductRepo repositorio de productos en memoria. GetForUpdate se comporta
// como GetByID (no hay locking que simular en memoria).
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id, tenantID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id, tenantID string) (*entity.Product, error) {
	return r.GetByID(id, tenantID)
}

func (r *fakeProductRepo) GetByTenantAndSKU(tenantID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.TenantID == tenantID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListBySupplier(tenantID, supplierID string) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) UpdateStock(id, tenantID string, stock int64) error {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return domain.ErrNotFound
	}
	p.StockQuantity = stock
	return nil
}

func (r *fakeProductRepo) Delete(id, tenantID string) error { delete(r.products, id); return nil }

// fakeLedgerRepo libro de inventario en memoria, append-only.
type fakeLedgerRepo struct {
	entries []*entity.InventoryTransaction
}

func (r *fakeLedgerRepo) Create(tx *entity.InventoryTransaction) error {
	r.entries = append(r.entries, tx)
	return nil
}

func (r *fakeLedgerRepo) ListByProduct(productID, tenantID string) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	// Más reciente primero, como el repositorio real
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.ProductID == productID && e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner entrega los repos directamente; si fn falla, descarta las
// entradas del libro agregadas durante la "transacción" (rollback simplificado).
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	ledgerRepo  *fakeLedgerRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.InventoryTransactionRepository,
) error) error {
	before := len(tr.ledgerRepo.entries)
	if err := fn(tr.productRepo, tr.ledgerRepo); err != nil {
		tr.ledgerRepo.entries = tr.ledgerRepo.entries[:before]
		return err
	}
	return nil
}

// fakePublisher acumula los eventos publicados.
type fakePublisher struct {
	published []interface{}
	fail      error
}

func (p *fakePublisher) Publish(ctx context.Context, key string, event interface{}) error {
	if p.fail != nil {
		return p.fail
	}
	p.published = append(p.published, event)
	return nil
}

// buildLedger arma el caso de uso con un producto inicial y stock dado.
func buildLedger(t *testing.T, initialStock int64, pub events.Publisher) (*inventory.LedgerUseCase, *fakeProductRepo, *fakeLedgerRepo) {
	t.Helper()
	productRepo := newFakeProductRepo(&entity.Product{
		ID:            testProductID,
		TenantID:      testTenantID,
		SKU:           "SKU-001",
		Name:          "Tornillo 3/8",
		Unit:          "u",
		CostPrice:     decimal.NewFromFloat(120.50),
		StockQuantity: initialStock,
		CreatedAt:     time.Now(),
	})
	ledgerRepo := &fakeLedgerRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, ledgerRepo: ledgerRepo}
	uc := inventory.NewLedgerUseCase(runner, ledgerRepo, pub, logger.Nop())
	return uc, productRepo, ledgerRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register — entradas y salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaSumaStock(t *testing.T) {
	uc, productRepo, ledgerRepo := buildLedger(t, 10, nil)

	tx, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      entity.TransactionTypeIN,
		Quantity:  5,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, entity.TransactionTypeIN, tx.Type)
	assert.Equal(t, int64(5), tx.Quantity)
	assert.Nil(t, tx.ReferenceID, "sin referencia explícita el campo queda nil")

	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, int64(15), p.StockQuantity, "IN debe sumar al stock")
	assert.Len(t, ledgerRepo.entries, 1, "debe quedar exactamente una entrada en el libro")
}

func TestRegister_SalidaRestaStock(t *testing.T) {
	uc, productRepo, _ := buildLedger(t, 10, nil)

	tx, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  4,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, int64(6), p.StockQuantity, "OUT debe restar del stock")
}

// La salida que dejaría el stock negativo debe rechazarse sin consumo parcial:
// ni el stock ni el libro cambian.
func TestRegister_SalidaSinStock_ErrInsufficientStock(t *testing.T) {
	uc, productRepo, ledgerRepo := buildLedger(t, 3, nil)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  4,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, int64(3), p.StockQuantity, "el stock no debe cambiar ante un rechazo")
	assert.Empty(t, ledgerRepo.entries, "el libro no debe registrar la transacción rechazada")
}

// Sacar exactamente todo el stock disponible es válido (queda en 0).
func TestRegister_SalidaExacta_DejaStockEnCero(t *testing.T) {
	uc, productRepo, _ := buildLedger(t, 7, nil)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  7,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, int64(0), p.StockQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register — validaciones de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CantidadCeroONegativa_ErrInvalidInput(t *testing.T) {
	uc, _, _ := buildLedger(t, 10, nil)

	for _, q := range []int64{0, -3} {
		_, err := uc.Register(context.Background(), inventory.TransactionInput{
			TenantID:  testTenantID,
			ProductID: testProductID,
			Type:      entity.TransactionTypeIN,
			Quantity:  q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", q)
	}
}

func TestRegister_TipoDesconocido_ErrInvalidInput(t *testing.T) {
	uc, _, _ := buildLedger(t, 10, nil)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProductoInexistente_ErrNotFound(t *testing.T) {
	uc, _, _ := buildLedger(t, 10, nil)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: "00000000-0000-0000-0000-0000000000ff",
		Type:      entity.TransactionTypeIN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El producto existe pero en otro tenant: se comporta como inexistente.
func TestRegister_ProductoDeOtroTenant_ErrNotFound(t *testing.T) {
	uc, _, _ := buildLedger(t, 10, nil)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  "00000000-0000-0000-0000-0000000000ee",
		ProductID: testProductID,
		Type:      entity.TransactionTypeIN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante: stock = Σ entradas − Σ salidas del libro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_StockIgualASumaDelLibro(t *testing.T) {
	uc, productRepo, ledgerRepo := buildLedger(t, 0, nil)

	moves := []struct {
		typ string
		qty int64
	}{
		{entity.TransactionTypeIN, 20},
		{entity.TransactionTypeOUT, 5},
		{entity.TransactionTypeIN, 7},
		{entity.TransactionTypeOUT, 12},
	}
	for _, m := range moves {
		_, err := uc.Register(context.Background(), inventory.TransactionInput{
			TenantID:  testTenantID,
			ProductID: testProductID,
			Type:      m.typ,
			Quantity:  m.qty,
		})
		require.NoError(t, err)
	}

	var sum int64
	for _, e := range ledgerRepo.entries {
		if e.Type == entity.TransactionTypeIN {
			sum += e.Quantity
		} else {
			sum -= e.Quantity
		}
	}
	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, sum, p.StockQuantity,
		"el stock del producto debe coincidir con la suma de deltas del libro")
	assert.Equal(t, int64(10), p.StockQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial y eventos
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductHistory_MasRecientePrimero(t *testing.T) {
	uc, _, _ := buildLedger(t, 0, nil)

	for i := int64(1); i <= 3; i++ {
		_, err := uc.Register(context.Background(), inventory.TransactionInput{
			TenantID:  testTenantID,
			ProductID: testProductID,
			Type:      entity.TransactionTypeIN,
			Quantity:  i,
		})
		require.NoError(t, err)
	}

	history, err := uc.GetProductHistory(testProductID, testTenantID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(3), history[0].Quantity, "la última transacción va primero")
	assert.Equal(t, int64(1), history[2].Quantity)
}

func TestRegister_PublicaEvento(t *testing.T) {
	pub := &fakePublisher{}
	uc, _, _ := buildLedger(t, 0, pub)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:    testTenantID,
		ProductID:   testProductID,
		Type:        entity.TransactionTypeIN,
		Quantity:    9,
		ReferenceID: "orden-123",
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)

	ev, ok := pub.published[0].(events.MovementRegistered)
	require.True(t, ok, "el evento debe ser MovementRegistered")
	assert.Equal(t, events.TypeMovementRegistered, ev.Type)
	assert.Equal(t, testProductID, ev.ProductID)
	assert.Equal(t, int64(9), ev.Quantity)
	assert.Equal(t, "orden-123", ev.ReferenceID)
}

// Un publisher caído no debe afectar el registro: el movimiento se persiste
// igual y el error solo se loguea.
func TestRegister_FalloDelPublisher_NoRompeElRegistro(t *testing.T) {
	pub := &fakePublisher{fail: errors.New("broker caído")}
	uc, productRepo, _ := buildLedger(t, 0, pub)

	tx, err := uc.Register(context.Background(), inventory.TransactionInput{
		TenantID:  testTenantID,
		ProductID: testProductID,
		Type:      entity.TransactionTypeIN,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	p, _ := productRepo.GetByID(testProductID, testTenantID)
	assert.Equal(t, int64(2), p.StockQuantity)
}
