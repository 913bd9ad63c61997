package dto

import "time"

// CreateTenantRequest alta de una empresa junto con su usuario COMPANY inicial.
type CreateTenantRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=100"`
	PlanType     string            `json:"plan_type"`
	ContactName  string            `json:"contact_name" validate:"required"`
	PhoneNumber  string            `json:"phone_number"`
	ContactEmail string            `json:"contact_email" validate:"omitempty,email"`
	CompanyUser  CreateUserRequest `json:"company_user" validate:"required"`
}

// UpdateTenantRequest patch de una empresa.
type UpdateTenantRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	PlanType     *string `json:"plan_type"`
	IsActive     *bool   `json:"is_active"`
	ContactName  *string `json:"contact_name"`
	PhoneNumber  *string `json:"phone_number"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

// TenantResponse salida de una empresa.
type TenantResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	PlanType        string     `json:"plan_type"`
	IsActive        bool       `json:"is_active"`
	SubscriptionEnd *time.Time `json:"subscription_end,omitempty"`
	ContactName     string     `json:"contact_name"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
	ContactEmail    string     `json:"contact_email,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
