package entity

// Supplier proveedor de productos, propiedad de un tenant.
type Supplier struct {
	ID       string
	TenantID string
	Name     string
	Phone    string
	Email    string
	CBU      string
}
