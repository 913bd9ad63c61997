package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// NotificationUseCase solicitudes internas pendientes de resolución, hoy
// únicamente pedidos de reset de contraseña.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, userRepo: userRepo}
}

// RequestPasswordReset registra el pedido de reset para el usuario indicado.
// Es un endpoint público: si el usuario no existe responde igual que si
// existiera, y pedidos repetidos reutilizan la solicitud PENDING vigente.
func (uc *NotificationUseCase) RequestPasswordReset(username string) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return nil // no revelar existencia de usuarios
	}
	existing, err := uc.repo.GetPendingByUserAndType(user.ID, entity.NotificationTypeResetPassword)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Type:      entity.NotificationTypeResetPassword,
		Status:    entity.NotificationStatusPending,
		CreatedAt: time.Now(),
	}
	return uc.repo.Create(notification)
}

// List lista notificaciones según el rol del caller: ADMIN ve los pedidos de
// usuarios COMPANY de todos los tenants; COMPANY ve los de sus EMPLOYEE.
func (uc *NotificationUseCase) List(callerRole, callerTenantID, status string) ([]dto.NotificationResponse, error) {
	filter := repository.NotificationFilter{Status: status}
	switch callerRole {
	case entity.RoleAdmin:
		filter.CreatorRole = entity.RoleCompany
	case entity.RoleCompany:
		filter.TenantID = callerTenantID
		filter.CreatorRole = entity.RoleEmployee
	default:
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, *toNotificationResponse(n))
	}
	return out, nil
}

// Resolve marca una notificación PENDING como RESOLVED o IGNORED. COMPANY solo
// puede resolver notificaciones de su propio tenant.
func (uc *NotificationUseCase) Resolve(id, callerRole, callerTenantID string, in dto.ResolveNotificationRequest) (*dto.NotificationResponse, error) {
	if in.Status != entity.NotificationStatusResolved && in.Status != entity.NotificationStatusIgnored {
		return nil, domain.ErrInvalidInput
	}
	notification, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && notification.TenantID != callerTenantID {
		return nil, domain.ErrNotFound
	}
	if notification.Status != entity.NotificationStatusPending {
		return nil, domain.ErrInvalidState
	}
	if err := uc.repo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	notification.Status = in.Status
	return toNotificationResponse(notification), nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		TenantID:  n.TenantID,
		Type:      n.Type,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
}
