package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: make(map[string]*entity.Tenant)}
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error { r.tenants[t.ID] = t; return nil }

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenantRepo) List() ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTenantRepo) Update(t *entity.Tenant) error { r.tenants[t.ID] = t; return nil }
func (r *fakeTenantRepo) Delete(id string) error        { delete(r.tenants, id); return nil }

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, dup := r.users[u.Username]; dup {
		return domain.ErrDuplicate
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) ListByTenant(tenantID string) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                         { return nil }
func (r *fakeUserRepo) Delete(id, tenantID string) error                    { return nil }

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error { r.payments[p.ID] = p; return nil }

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) ListByTenant(tenantID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List() ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdateStatus(id, status string) error {
	p, ok := r.payments[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

// buildTenantUC arma el caso de uso de empresas con sus fakes.
func buildTenantUC() (*usecase.TenantUseCase, *fakeTenantRepo, *fakeUserRepo) {
	tenantRepo := newFakeTenantRepo()
	userRepo := newFakeUserRepo()
	return usecase.NewTenantUseCase(tenantRepo, userRepo), tenantRepo, userRepo
}

func createTenantRequest(username string) dto.CreateTenantRequest {
	return dto.CreateTenantRequest{
		Name:        "ACME SRL",
		ContactName: "Juan Pérez",
		CompanyUser: dto.CreateUserRequest{
			Username: username,
			Password: "contraseña-larga",
			FullName: "ACME Compras",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TenantUseCase — alta y suscripción
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantCreate_TrialArrancaConUnMes(t *testing.T) {
	uc, _, userRepo := buildTenantUC()

	resp, err := uc.Create(createTenantRequest("acme"))
	require.NoError(t, err)

	assert.Equal(t, entity.PlanFreeTrial, resp.PlanType, "sin plan explícito se asigna el trial")
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.SubscriptionEnd)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *resp.SubscriptionEnd, time.Minute,
		"el trial vence en un mes")

	// El usuario COMPANY inicial queda creado y asociado a la empresa
	user, _ := userRepo.GetByUsername("acme")
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleCompany, user.Role)
	assert.Equal(t, resp.ID, user.TenantID)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestTenantCreate_UsernameDuplicado_ErrDuplicate(t *testing.T) {
	uc, _, _ := buildTenantUC()

	_, err := uc.Create(createTenantRequest("acme"))
	require.NoError(t, err)

	_, err = uc.Create(createTenantRequest("acme"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTenantCreate_PlanDesconocido_ErrInvalidInput(t *testing.T) {
	uc, _, _ := buildTenantUC()
	in := createTenantRequest("acme")
	in.PlanType = "PLAN_DORADO"

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Con la suscripción todavía vigente la extensión corre desde el vencimiento
// actual, no desde hoy.
func TestExtendSubscription_DesdeVencimientoVigente(t *testing.T) {
	uc, tenantRepo, _ := buildTenantUC()
	resp, err := uc.Create(createTenantRequest("acme"))
	require.NoError(t, err)
	currentEnd := *resp.SubscriptionEnd

	require.NoError(t, uc.ExtendSubscription(resp.ID, 2))

	stored, _ := tenantRepo.GetByID(resp.ID)
	require.NotNil(t, stored.SubscriptionEnd)
	assert.WithinDuration(t, currentEnd.AddDate(0, 2, 0), *stored.SubscriptionEnd, time.Minute)
}

// Con la suscripción vencida la extensión corre desde hoy y reactiva la empresa.
func TestExtendSubscription_DesdeHoySiVencio(t *testing.T) {
	uc, tenantRepo, _ := buildTenantUC()
	resp, err := uc.Create(createTenantRequest("acme"))
	require.NoError(t, err)

	past := time.Now().AddDate(0, -3, 0)
	stored, _ := tenantRepo.GetByID(resp.ID)
	stored.SubscriptionEnd = &past
	stored.IsActive = false
	require.NoError(t, tenantRepo.Update(stored))

	require.NoError(t, uc.ExtendSubscription(resp.ID, 1))

	stored, _ = tenantRepo.GetByID(resp.ID)
	assert.True(t, stored.IsActive, "la extensión reactiva la empresa")
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *stored.SubscriptionEnd, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// PaymentUseCase — informar, verificar y cancelar
// ──────────────────────────────────────────────────────────────────────────────

// buildPaymentUC arma pagos sobre una empresa ya creada.
func buildPaymentUC(t *testing.T) (*usecase.PaymentUseCase, *usecase.TenantUseCase, *fakeTenantRepo, string) {
	t.Helper()
	tenantUC, tenantRepo, _ := buildTenantUC()
	resp, err := tenantUC.Create(createTenantRequest("acme"))
	require.NoError(t, err)
	paymentUC := usecase.NewPaymentUseCase(newFakePaymentRepo(), tenantUC)
	return paymentUC, tenantUC, tenantRepo, resp.ID
}

func createPayment(t *testing.T, uc *usecase.PaymentUseCase, tenantID, typ string) *dto.PaymentResponse {
	t.Helper()
	resp, err := uc.Create(tenantID, dto.CreatePaymentRequest{
		Amount:        decimal.NewFromInt(50000),
		PaymentPeriod: time.Now(),
		ProofURL:      "https://storage/comprobante.png",
		Type:          typ,
	})
	require.NoError(t, err)
	return resp
}

func TestPaymentCreate_NacePendiente(t *testing.T) {
	uc, _, _, tenantID := buildPaymentUC(t)

	resp := createPayment(t, uc, tenantID, entity.PaymentTypeMonthly)
	assert.Equal(t, entity.PaymentStatusPending, resp.Status)
	assert.Equal(t, tenantID, resp.TenantID)
}

func TestPaymentCreate_TipoDesconocido_ErrInvalidInput(t *testing.T) {
	uc, _, _, tenantID := buildPaymentUC(t)

	_, err := uc.Create(tenantID, dto.CreatePaymentRequest{
		Amount:        decimal.NewFromInt(50000),
		PaymentPeriod: time.Now(),
		Type:          "PAGO_SEMANAL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La aprobación de un pago mensual corre la suscripción un mes.
func TestPaymentVerify_AprobadoExtiendeUnMes(t *testing.T) {
	uc, _, tenantRepo, tenantID := buildPaymentUC(t)
	payment := createPayment(t, uc, tenantID, entity.PaymentTypeMonthly)

	before, _ := tenantRepo.GetByID(tenantID)
	baseEnd := *before.SubscriptionEnd

	resp, err := uc.Verify(payment.ID, dto.VerifyPaymentRequest{Status: entity.PaymentStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusApproved, resp.Status)

	after, _ := tenantRepo.GetByID(tenantID)
	assert.WithinDuration(t, baseEnd.AddDate(0, 1, 0), *after.SubscriptionEnd, time.Minute)
}

// El pago anual extiende doce meses.
func TestPaymentVerify_AnualExtiendeDoceMeses(t *testing.T) {
	uc, _, tenantRepo, tenantID := buildPaymentUC(t)
	payment := createPayment(t, uc, tenantID, entity.PaymentTypeYearly)

	before, _ := tenantRepo.GetByID(tenantID)
	baseEnd := *before.SubscriptionEnd

	_, err := uc.Verify(payment.ID, dto.VerifyPaymentRequest{Status: entity.PaymentStatusApproved})
	require.NoError(t, err)

	after, _ := tenantRepo.GetByID(tenantID)
	assert.WithinDuration(t, baseEnd.AddDate(0, 12, 0), *after.SubscriptionEnd, time.Minute)
}

// El rechazo no toca la suscripción.
func TestPaymentVerify_RechazadoNoExtiende(t *testing.T) {
	uc, _, tenantRepo, tenantID := buildPaymentUC(t)
	payment := createPayment(t, uc, tenantID, entity.PaymentTypeMonthly)

	before, _ := tenantRepo.GetByID(tenantID)
	baseEnd := *before.SubscriptionEnd

	resp, err := uc.Verify(payment.ID, dto.VerifyPaymentRequest{Status: entity.PaymentStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRejected, resp.Status)

	after, _ := tenantRepo.GetByID(tenantID)
	assert.Equal(t, baseEnd, *after.SubscriptionEnd)
}

func TestPaymentVerify_YaResuelto_ErrInvalidState(t *testing.T) {
	uc, _, _, tenantID := buildPaymentUC(t)
	payment := createPayment(t, uc, tenantID, entity.PaymentTypeMonthly)

	_, err := uc.Verify(payment.ID, dto.VerifyPaymentRequest{Status: entity.PaymentStatusApproved})
	require.NoError(t, err)

	_, err = uc.Verify(payment.ID, dto.VerifyPaymentRequest{Status: entity.PaymentStatusRejected})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestPaymentCancel_SoloPropioYPendiente(t *testing.T) {
	uc, _, _, tenantID := buildPaymentUC(t)
	payment := createPayment(t, uc, tenantID, entity.PaymentTypeMonthly)

	// Otra empresa no puede cancelar un pago ajeno
	err := uc.Cancel(payment.ID, "otro-tenant")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Cancel(payment.ID, tenantID))

	// Ya cancelado no admite una segunda cancelación
	err = uc.Cancel(payment.ID, tenantID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
