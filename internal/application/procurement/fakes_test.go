package procurement_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTenantID   = "00000000-0000-0000-0000-00000000000a"
	testUserID     = "00000000-0000-0000-0000-00000000000b"
	testSupplierA  = "00000000-0000-0000-0000-0000000000a1"
	testSupplierB  = "00000000-0000-0000-0000-0000000000b1"
	testProductID1 = "00000000-0000-0000-0000-0000000000p1"
	testProductID2 = "00000000-0000-0000-0000-0000000000p2"
	testProductID3 = "00000000-0000-0000-0000-0000000000p3"
)

// fakeProductRepo repositorio de productos en memoria.
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
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.ProductID == productID && e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeRequestRepo repositorio de solicitudes en memoria. Carga los productos
// de los renglones (con su proveedor) desde los repositorios, igual que el real.
type fakeRequestRepo struct {
	productRepo *fakeProductRepo
	suppliers   map[string]*entity.Supplier
	requests    map[string]*entity.PurchaseRequest
	order       []string // orden de inserción para listados determinísticos
}

func newFakeRequestRepo(productRepo *fakeProductRepo, suppliers ...*entity.Supplier) *fakeRequestRepo {
	m := make(map[string]*entity.Supplier)
	for _, s := range suppliers {
		m[s.ID] = s
	}
	return &fakeRequestRepo{productRepo: productRepo, suppliers: m, requests: make(map[string]*entity.PurchaseRequest)}
}

func (r *fakeRequestRepo) Create(request *entity.PurchaseRequest) error {
	cp := *request
	cp.Items = nil
	r.requests[request.ID] = &cp
	r.order = append(r.order, request.ID)
	return nil
}

func (r *fakeRequestRepo) CreateItem(item *entity.PurchaseRequestItem) error {
	req, ok := r.requests[item.RequestID]
	if !ok {
		return domain.ErrNotFound
	}
	req.Items = append(req.Items, *item)
	return nil
}

func (r *fakeRequestRepo) GetByID(id, tenantID string) (*entity.PurchaseRequest, error) {
	req, ok := r.requests[id]
	if !ok || req.TenantID != tenantID {
		return nil, nil
	}
	return r.withProducts(req), nil
}

func (r *fakeRequestRepo) ListByIDs(tenantID string, ids []string) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for _, id := range ids {
		req, ok := r.requests[id]
		if !ok || req.TenantID != tenantID {
			continue
		}
		out = append(out, r.withProducts(req))
	}
	return out, nil
}

func (r *fakeRequestRepo) ListByTenant(tenantID, status string) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for i := len(r.order) - 1; i >= 0; i-- {
		req := r.requests[r.order[i]]
		if req == nil || req.TenantID != tenantID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, r.withProducts(req))
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(id, tenantID, status string) error {
	req, ok := r.requests[id]
	if !ok || req.TenantID != tenantID {
		return domain.ErrNotFound
	}
	req.Status = status
	return nil
}

func (r *fakeRequestRepo) Delete(id, tenantID string) error {
	delete(r.requests, id)
	return nil
}

// withProducts devuelve una copia con los punteros a producto y proveedor resueltos.
func (r *fakeRequestRepo) withProducts(req *entity.PurchaseRequest) *entity.PurchaseRequest {
	cp := *req
	cp.Items = make([]entity.PurchaseRequestItem, len(req.Items))
	copy(cp.Items, req.Items)
	for i := range cp.Items {
		p, _ := r.productRepo.GetByID(cp.Items[i].ProductID, req.TenantID)
		if p != nil {
			p.Supplier = r.suppliers[p.SupplierID]
		}
		cp.Items[i].Product = p
	}
	return &cp
}

// fakeOrderRepo repositorio de órdenes en memoria.
type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	items  map[string]*entity.PurchaseOrderItem // por ID de renglón
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.PurchaseOrder),
		items:  make(map[string]*entity.PurchaseOrderItem),
	}
}

func (r *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	cp := *order
	cp.Items = nil
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id, tenantID string) (*entity.PurchaseOrder, error) {
	order, ok := r.orders[id]
	if !ok || order.TenantID != tenantID {
		return nil, nil
	}
	cp := *order
	cp.Items = r.itemsOf(id)
	return &cp, nil
}

func (r *fakeOrderRepo) GetForUpdate(id, tenantID string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id, tenantID)
}

func (r *fakeOrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, order := range r.orders {
		if order.TenantID != tenantID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		cp := *order
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) UpdateItemReceived(itemID string, receivedQuantity int64) error {
	item, ok := r.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	item.ReceivedQuantity = receivedQuantity
	return nil
}

func (r *fakeOrderRepo) Update(order *entity.PurchaseOrder) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = order.Status
	stored.ExpectedDeliveryDate = order.ExpectedDeliveryDate
	stored.Notes = order.Notes
	return nil
}

func (r *fakeOrderRepo) Delete(id, tenantID string) error {
	for itemID, item := range r.items {
		if item.OrderID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.orders, id)
	return nil
}

// itemsOf renglones de la orden en orden estable.
func (r *fakeOrderRepo) itemsOf(orderID string) []entity.PurchaseOrderItem {
	var out []entity.PurchaseOrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// fakeTenantRepo devuelve siempre el mismo tenant.
type fakeTenantRepo struct {
	tenant *entity.Tenant
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error { return nil }

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	if r.tenant == nil || r.tenant.ID != id {
		return nil, nil
	}
	return r.tenant, nil
}

func (r *fakeTenantRepo) List() ([]*entity.Tenant, error) { return nil, nil }
func (r *fakeTenantRepo) Update(t *entity.Tenant) error   { return nil }
func (r *fakeTenantRepo) Delete(id string) error          { return nil }

// fakeTxRunner entrega los repos en memoria directamente; el rollback real
// es responsabilidad del runner de Postgres.
type fakeTxRunner struct {
	requestRepo *fakeRequestRepo
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
	ledgerRepo  *fakeLedgerRepo
}

func (tr *fakeTxRunner) RunProcurement(ctx context.Context, fn func(
	requestRepo repository.PurchaseRequestRepository,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	ledgerRepo repository.InventoryTransactionRepository,
) error) error {
	return fn(tr.requestRepo, tr.orderRepo, tr.productRepo, tr.ledgerRepo)
}

// fakePublisher acumula los eventos publicados.
type fakePublisher struct {
	published []any
}

func (p *fakePublisher) Publish(ctx context.Context, key string, event any) error {
	p.published = append(p.published, event)
	return nil
}

// testSupplier proveedor de catálogo con nombre dado.
func testSupplier(id, name string) *entity.Supplier {
	return &entity.Supplier{
		ID:       id,
		TenantID: testTenantID,
		Name:     name,
	}
}

// testProduct producto de catálogo con proveedor y costo dados.
func testProduct(id, supplierID, sku string, cost float64, stock int64) *entity.Product {
	return &entity.Product{
		ID:            id,
		TenantID:      testTenantID,
		SKU:           sku,
		Name:          "Producto " + sku,
		Unit:          "u",
		CostPrice:     decimal.NewFromFloat(cost),
		StockQuantity: stock,
		SupplierID:    supplierID,
	}
}
