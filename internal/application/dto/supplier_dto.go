package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
	CBU   string `json:"cbu" validate:"omitempty,len=22"`
}

// UpdateSupplierRequest patch de un proveedor.
type UpdateSupplierRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
	CBU   *string `json:"cbu"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	CBU      string `json:"cbu,omitempty"`
}
