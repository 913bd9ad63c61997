package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones internas (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones pendientes
// @Description  ADMIN ve los pedidos de usuarios COMPANY; COMPANY los de sus EMPLOYEE.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/v1/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetRole(c), GetTenantID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una notificación pendiente
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la notificación"
// @Param        body  body  dto.ResolveNotificationRequest  true  "RESOLVED | IGNORED"
// @Success      200   {object}  dto.NotificationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/notifications/{id} [put]
func (h *NotificationHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Resolve(c.Params("id"), GetRole(c), GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
