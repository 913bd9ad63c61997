package entity

// Roles del sistema.
const (
	RoleAdmin    = "ADMIN"
	RoleCompany  = "COMPANY"
	RoleEmployee = "EMPLOYEE"
)

// User usuario de un tenant. Username es único a nivel global.
type User struct {
	ID           string
	TenantID     string
	Username     string
	PasswordHash string
	Role         string
	FullName     string
	IsActive     bool
}
