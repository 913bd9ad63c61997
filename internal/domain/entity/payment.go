package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago de suscripción.
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusApproved = "APPROVED"
	PaymentStatusRejected = "REJECTED"
	PaymentStatusCanceled = "CANCELED"
)

// Tipos de pago.
const (
	PaymentTypeMonthly = "PAGO_MENSUAL"
	PaymentTypeYearly  = "PAGO_ANUAL"
	PaymentTypeGrace   = "SOLICITUD_GRACIA"
)

// Payment pago de suscripción de un tenant, con comprobante opcional.
type Payment struct {
	ID            string
	TenantID      string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentPeriod time.Time
	ProofURL      string
	Type          string
	Status        string
}
