package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
)

// RequestHandler maneja las peticiones HTTP de solicitudes de compra (protegido).
type RequestHandler struct {
	uc *procurement.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *procurement.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de compra
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequestRequest  true  "Renglones de la solicitud"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	request, err := h.uc.CreateRequest(c.Context(), GetTenantID(c), GetUserID(c), in.Items)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestDTO(request))
}

// List godoc
// @Summary      Listar solicitudes de compra
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (PENDING, APPROVED, REJECTED, CANCELED)"
// @Success      200  {array}  dto.RequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRequests(GetTenantID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRequestDTO(r))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	request, err := h.uc.GetRequest(c.Params("id"), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestDTO(request))
}

// UpdateStatus godoc
// @Summary      Decidir una solicitud
// @Description  Única transición permitida: PENDING → APPROVED | REJECTED |
//
//	CANCELED. Los estados terminales son inmutables (409) y los
//	destinos inválidos responden 422.
//
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  map[string]string  true  "{\"status\": \"APPROVED\"}"
// @Success      200   {object}  dto.RequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	request, err := h.uc.UpdateStatus(GetTenantID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestDTO(request))
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Description  Solo mientras está PENDING.
// @Tags         requests
// @Security     Bearer
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/requests/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteRequest(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
