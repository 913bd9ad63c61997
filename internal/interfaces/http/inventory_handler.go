package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterTransaction godoc
// @Summary      Registrar transacción de inventario
// @Description  Aplica el delta de stock (IN suma, OUT resta) y persiste la
//
//	entrada del libro en la misma transacción. OUT falla con 409
//	si no hay stock suficiente.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "product_id, type (IN|OUT), quantity"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	tx, err := h.uc.Register(c.Context(), inventory.TransactionInput{
		TenantID:    GetTenantID(c),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		ReferenceID: in.ReferenceID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionDTO(tx))
}

// GetProductHistory godoc
// @Summary      Historial de inventario de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/v1/inventory/products/{id}/history [get]
func (h *InventoryHandler) GetProductHistory(c *fiber.Ctx) error {
	list, err := h.uc.GetProductHistory(c.Params("id"), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionDTO(t))
	}
	return c.JSON(out)
}
