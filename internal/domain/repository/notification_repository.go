package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// NotificationFilter filtros de listado de notificaciones.
// TenantID vacío = todos los tenants (solo ADMIN); CreatorRole filtra por el
// rol del usuario que originó la solicitud.
type NotificationFilter struct {
	TenantID    string
	Status      string
	CreatorRole string
}

// NotificationRepository puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// GetPendingByUserAndType devuelve la solicitud PENDING existente del
	// usuario para ese tipo, o nil (deduplicación de solicitudes).
	GetPendingByUserAndType(userID, notifType string) (*entity.Notification, error)
	List(filter NotificationFilter) ([]*entity.Notification, error)
	UpdateStatus(id, status string) error
}
