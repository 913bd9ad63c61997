package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// PaymentUseCase pagos de suscripción: la empresa informa el pago con su
// comprobante y el ADMIN lo verifica; la aprobación extiende la suscripción.
type PaymentUseCase struct {
	repo     repository.PaymentRepository
	tenantUC *TenantUseCase
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, tenantUC *TenantUseCase) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tenantUC: tenantUC}
}

// Create informa un pago; queda PENDING hasta la verificación del ADMIN.
func (uc *PaymentUseCase) Create(tenantID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !validPaymentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Amount:        in.Amount,
		PaymentDate:   time.Now(),
		PaymentPeriod: in.PaymentPeriod,
		ProofURL:      in.ProofURL,
		Type:          in.Type,
		Status:        entity.PaymentStatusPending,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListByTenant lista los pagos de la empresa.
func (uc *PaymentUseCase) ListByTenant(tenantID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListAll lista los pagos de todas las empresas (solo ADMIN).
func (uc *PaymentUseCase) ListAll() ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// Verify resuelve un pago PENDING. La aprobación extiende la suscripción del
// tenant: un mes para PAGO_MENSUAL y SOLICITUD_GRACIA, doce para PAGO_ANUAL.
func (uc *PaymentUseCase) Verify(paymentID string, in dto.VerifyPaymentRequest) (*dto.PaymentResponse, error) {
	if in.Status != entity.PaymentStatusApproved && in.Status != entity.PaymentStatusRejected {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.repo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: el pago ya fue resuelto (%s)", domain.ErrInvalidState, payment.Status)
	}
	if err := uc.repo.UpdateStatus(paymentID, in.Status); err != nil {
		return nil, err
	}
	payment.Status = in.Status

	if in.Status == entity.PaymentStatusApproved {
		months := 1
		if payment.Type == entity.PaymentTypeYearly {
			months = 12
		}
		if err := uc.tenantUC.ExtendSubscription(payment.TenantID, months); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(payment), nil
}

// Cancel permite a la empresa cancelar un pago propio todavía PENDING.
func (uc *PaymentUseCase) Cancel(paymentID, tenantID string) error {
	payment, err := uc.repo.GetByID(paymentID)
	if err != nil {
		return err
	}
	if payment == nil || payment.TenantID != tenantID {
		return domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return fmt.Errorf("%w: solo se pueden cancelar pagos pendientes", domain.ErrInvalidState)
	}
	return uc.repo.UpdateStatus(paymentID, entity.PaymentStatusCanceled)
}

func validPaymentType(t string) bool {
	switch t {
	case entity.PaymentTypeMonthly, entity.PaymentTypeYearly, entity.PaymentTypeGrace:
		return true
	}
	return false
}

func toPaymentResponses(list []*entity.Payment) []dto.PaymentResponse {
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentPeriod: p.PaymentPeriod,
		ProofURL:      p.ProofURL,
		Type:          p.Type,
		Status:        p.Status,
	}
}
