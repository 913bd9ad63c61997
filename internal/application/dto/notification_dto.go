package dto

import "time"

// ResetRequestRequest entrada pública para solicitar reset de contraseña.
type ResetRequestRequest struct {
	Username string `json:"username" validate:"required"`
}

// ResolveNotificationRequest resolución de una notificación pendiente.
type ResolveNotificationRequest struct {
	Status string `json:"status" validate:"required,oneof=RESOLVED IGNORED"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
