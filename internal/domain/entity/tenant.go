package entity

import "time"

// Planes de suscripción de un tenant.
const (
	PlanFreeForever = "FREE_FOREVER"
	PlanFreeTrial   = "FREE_TRIAL_1_MONTH"
	PlanPaidMonthly = "PAID_MONTHLY"
	PlanPaidYearly  = "PAID_YEARLY"
)

// Tenant representa una empresa: partición aislada de todos los datos.
// Toda entidad pertenece exactamente a un tenant.
type Tenant struct {
	ID              string
	Name            string
	PlanType        string
	IsActive        bool
	SubscriptionEnd *time.Time
	ContactName     string
	PhoneNumber     string
	ContactEmail    string
	CreatedAt       time.Time
}
