package entity

import "time"

// Estados de una solicitud de compra. PENDING es el único estado no terminal:
// una vez aprobada, rechazada o cancelada la solicitud queda inmutable.
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
	RequestStatusCanceled = "CANCELED"
)

// RequestStatusTerminal indica si un estado es terminal.
func RequestStatusTerminal(status string) bool {
	switch status {
	case RequestStatusApproved, RequestStatusRejected, RequestStatusCanceled:
		return true
	}
	return false
}

// ValidRequestStatus indica si el valor es un estado conocido.
func ValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCanceled:
		return true
	}
	return false
}

// PurchaseRequest solicitud de compra iniciada por un empleado o por la empresa.
type PurchaseRequest struct {
	ID        string
	TenantID  string
	UserID    string
	Status    string
	CreatedAt time.Time
	Items     []PurchaseRequestItem
}

// PurchaseRequestItem renglón de una solicitud. Quantity > 0.
type PurchaseRequestItem struct {
	ID        string
	RequestID string
	ProductID string
	Quantity  int64
	Product   *Product // carga eager para listados y agregación
}
