package entity

import "time"

// Estados y tipos de notificación.
const (
	NotificationStatusPending  = "PENDING"
	NotificationStatusResolved = "RESOLVED"
	NotificationStatusIgnored  = "IGNORED"

	NotificationTypeResetPassword = "RESET_PASSWORD_REQUEST"
)

// Notification solicitud interna pendiente de resolución (ej. reset de contraseña).
type Notification struct {
	ID        string
	UserID    string
	TenantID  string
	Type      string
	Status    string
	CreatedAt time.Time
}
