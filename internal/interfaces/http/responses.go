package http

import (
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Mapeos entidad → DTO para las respuestas de compras e inventario.

func toProductDTO(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		SKU:           p.SKU,
		Name:          p.Name,
		Unit:          p.Unit,
		BasePrice:     p.BasePrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		SupplierID:    p.SupplierID,
		Supplier:      toSupplierDTO(p.Supplier),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toSupplierDTO(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:       s.ID,
		TenantID: s.TenantID,
		Name:     s.Name,
		Phone:    s.Phone,
		Email:    s.Email,
		CBU:      s.CBU,
	}
}

func toTransactionDTO(t *entity.InventoryTransaction) dto.TransactionResponse {
	out := dto.TransactionResponse{
		ID:        t.ID,
		TenantID:  t.TenantID,
		ProductID: t.ProductID,
		Type:      t.Type,
		Quantity:  t.Quantity,
		CreatedAt: t.CreatedAt,
	}
	if t.ReferenceID != nil {
		out.ReferenceID = *t.ReferenceID
	}
	return out
}

func toRequestDTO(r *entity.PurchaseRequest) dto.RequestResponse {
	out := dto.RequestResponse{
		ID:        r.ID,
		TenantID:  r.TenantID,
		UserID:    r.UserID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		Items:     make([]dto.RequestItemResponse, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, dto.RequestItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   toProductDTO(it.Product),
		})
	}
	return out
}

func toOrderDTO(o *entity.PurchaseOrder) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:                   o.ID,
		TenantID:             o.TenantID,
		SupplierID:           o.SupplierID,
		Status:               o.Status,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Notes:                o.Notes,
		CreatedAt:            o.CreatedAt,
		Supplier:             toSupplierDTO(o.Supplier),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
			Product:          toProductDTO(it.Product),
		})
	}
	return out
}
