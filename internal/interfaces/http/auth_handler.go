package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// AuthHandler maneja registro, login y pedidos de reset de contraseña (público).
type AuthHandler struct {
	uc             *auth.UseCase
	notificationUC *usecase.NotificationUseCase
	tenantUC       *usecase.TenantUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, notificationUC *usecase.NotificationUseCase, tenantUC *usecase.TenantUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, notificationUC: notificationUC, tenantUC: tenantUC}
}

// Register godoc
// @Summary      Registrar una empresa
// @Description  Alta de autoservicio: crea la empresa y su usuario COMPANY inicial.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "Empresa y usuario inicial"
// @Success      201   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.CompanyUser.Username == "" || in.CompanyUser.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, username y password son requeridos"})
	}
	out, err := h.tenantUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RequestPasswordReset godoc
// @Summary      Solicitar reset de contraseña
// @Description  Registra un pedido de reset que un ADMIN o COMPANY resuelve
//
//	manualmente. Responde 202 exista o no el usuario.
//
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequestRequest  true  "Usuario"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/reset-request [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.ResetRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username es requerido"})
	}
	if err := h.notificationUC.RequestPasswordReset(in.Username); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "solicitud registrada"})
}
