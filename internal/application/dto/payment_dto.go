package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para informar un pago de suscripción.
type CreatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentPeriod time.Time       `json:"payment_period" validate:"required"`
	ProofURL      string          `json:"proof_url"`
	Type          string          `json:"type" validate:"required,oneof=PAGO_MENSUAL PAGO_ANUAL SOLICITUD_GRACIA"`
}

// VerifyPaymentRequest decisión del ADMIN sobre un pago pendiente.
type VerifyPaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentPeriod time.Time       `json:"payment_period"`
	ProofURL      string          `json:"proof_url,omitempty"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
}
