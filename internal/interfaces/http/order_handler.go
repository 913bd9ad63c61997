package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
)

// OrderHandler maneja las peticiones HTTP de órdenes de compra (protegido).
type OrderHandler struct {
	uc *procurement.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *procurement.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar órdenes desde solicitudes aprobadas
// @Description  Consolida las solicitudes indicadas en una orden DRAFT por
//
//	proveedor, sumando cantidades por producto y capturando el
//	costo vigente. Todo o nada: una solicitud inexistente (404) o
//	no aprobada (409) aborta la generación completa.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateOrdersRequest  true  "IDs de solicitudes aprobadas"
// @Success      201   {array}   dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/orders/generate [post]
func (h *OrderHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	orders, err := h.uc.CreateOrdersFromRequests(c.Context(), GetTenantID(c), in.RequestIDs)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := h.uc.ListOrders(GetTenantID(c), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, o := range list {
		out.Items = append(out.Items, toOrderDTO(o))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.Params("id"), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderDTO(order))
}

// Receive godoc
// @Summary      Recibir mercadería de una orden
// @Description  Suma las cantidades recibidas a cada renglón y registra las
//
//	entradas IN del libro de inventario en la misma transacción.
//	El estado de la orden se recalcula a partir de los renglones.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.ReceiveOrderRequest  true  "Cantidades recibidas por producto"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/receive [post]
func (h *OrderHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.ReceiveOrder(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderDTO(order))
}

// Update godoc
// @Summary      Actualizar orden
// @Description  Patch de estado, fecha estimada de entrega y notas. Los
//
//	estados derivados (RECEIVED, PARTIALLY_RECEIVED) no se pueden
//	fijar a mano (422).
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.UpdateOrder(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderDTO(order))
}

// Delete godoc
// @Summary      Eliminar orden
// @Description  Solo mientras está DRAFT o SENT.
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      PDF de la orden para el proveedor
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	raw, err := h.uc.OrderPDF(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="orden-compra.pdf"`)
	return c.Send(raw)
}
