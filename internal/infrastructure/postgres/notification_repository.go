package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una nueva notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, tenant_id, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.TenantID,
		notification.Type, notification.Status, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT id, user_id, tenant_id, type, status, created_at FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.UserID, &n.TenantID, &n.Type, &n.Status, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// GetPendingByUserAndType devuelve la solicitud PENDING vigente del usuario
// para ese tipo, o nil.
func (r *NotificationRepo) GetPendingByUserAndType(userID, notifType string) (*entity.Notification, error) {
	query := `
		SELECT id, user_id, tenant_id, type, status, created_at
		FROM notifications
		WHERE user_id = $1 AND type = $2 AND status = $3
		ORDER BY created_at DESC LIMIT 1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, userID, notifType, entity.NotificationStatusPending).Scan(
		&n.ID, &n.UserID, &n.TenantID, &n.Type, &n.Status, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending notification: %w", err)
	}
	return &n, nil
}

// List lista notificaciones según el filtro, más reciente primero.
// CreatorRole filtra por el rol del usuario que originó la solicitud.
func (r *NotificationRepo) List(filter repository.NotificationFilter) ([]*entity.Notification, error) {
	query := `
		SELECT n.id, n.user_id, n.tenant_id, n.type, n.status, n.created_at
		FROM notifications n
		JOIN users u ON u.id = n.user_id
		WHERE ($1 = '' OR n.tenant_id = $1)
		  AND ($2 = '' OR n.status = $2)
		  AND ($3 = '' OR u.role = $3)
		ORDER BY n.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, filter.TenantID, filter.Status, filter.CreatorRole)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.TenantID, &n.Type, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la notificación.
func (r *NotificationRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}
	return nil
}
