package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// PaymentHandler maneja los pagos de suscripción (protegido).
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Informar un pago de suscripción
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pagos
// @Description  ADMIN ve los pagos de todas las empresas; COMPANY solo los propios.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/v1/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	role := GetRole(c)
	if role != entity.RoleAdmin && role != entity.RoleCompany {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	if role == entity.RoleAdmin {
		out, err := h.uc.ListAll()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListByTenant(GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar un pago pendiente (solo ADMIN)
// @Description  APPROVED extiende la suscripción del tenant (1 mes, o 12 para
//
//	PAGO_ANUAL); REJECTED la deja como está.
//
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.VerifyPaymentRequest  true  "APPROVED | REJECTED"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/payments/{id}/verify [put]
func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Verify(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar un pago propio pendiente
// @Tags         payments
// @Security     Bearer
// @Param        id  path  string  true  "ID del pago"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/payments/{id} [delete]
func (h *PaymentHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id"), GetTenantID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
