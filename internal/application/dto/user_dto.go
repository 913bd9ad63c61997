package dto

// CreateUserRequest alta de un usuario dentro del tenant.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN COMPANY EMPLOYEE"`
}

// UpdateUserRequest patch de un usuario.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN COMPANY EMPLOYEE"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}
