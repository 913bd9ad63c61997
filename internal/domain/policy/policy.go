// Package policy centraliza la evaluación de permisos por rol.
// Es una función pura (rol, acción) → permitido, sin acceso a datos:
// los handlers la evalúan una vez por endpoint y los casos de uso
// permanecen libres de lógica de roles.
package policy

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// Acciones nombradas del sistema.
const (
	ActionProductRead   = "product.read"
	ActionProductWrite  = "product.write"
	ActionSupplierRead  = "supplier.read"
	ActionSupplierWrite = "supplier.write"

	ActionInventoryRegister = "inventory.register"
	ActionInventoryHistory  = "inventory.history"

	ActionRequestRead   = "request.read"
	ActionRequestCreate = "request.create"
	ActionRequestDecide = "request.decide"
	ActionRequestDelete = "request.delete"

	ActionOrderRead    = "order.read"
	ActionOrderCreate  = "order.create"
	ActionOrderReceive = "order.receive"
	ActionOrderUpdate  = "order.update"
	ActionOrderDelete  = "order.delete"

	ActionPaymentCreate = "payment.create"
	ActionPaymentCancel = "payment.cancel"
	ActionPaymentVerify = "payment.verify"
	ActionPaymentList   = "payment.list"

	ActionNotificationList    = "notification.list"
	ActionNotificationResolve = "notification.resolve"

	ActionTenantManage = "tenant.manage"
	ActionTenantRead   = "tenant.read"
	ActionUserManage   = "user.manage"
)

// allowed tabla rol → acciones permitidas.
var allowed = map[string]map[string]bool{
	entity.RoleAdmin: setOf(
		ActionPaymentVerify, ActionPaymentList,
		ActionNotificationList, ActionNotificationResolve,
		ActionTenantManage, ActionTenantRead,
		ActionUserManage,
	),
	entity.RoleCompany: setOf(
		ActionProductRead, ActionProductWrite,
		ActionSupplierRead, ActionSupplierWrite,
		ActionInventoryRegister, ActionInventoryHistory,
		ActionRequestRead, ActionRequestCreate, ActionRequestDecide, ActionRequestDelete,
		ActionOrderRead, ActionOrderCreate, ActionOrderReceive, ActionOrderUpdate, ActionOrderDelete,
		ActionPaymentCreate, ActionPaymentCancel,
		ActionNotificationList, ActionNotificationResolve,
		ActionTenantRead,
		ActionUserManage,
	),
	entity.RoleEmployee: setOf(
		ActionProductRead,
		ActionInventoryRegister, ActionInventoryHistory,
		ActionRequestRead, ActionRequestCreate, ActionRequestDecide, ActionRequestDelete,
		ActionOrderRead, ActionOrderCreate, ActionOrderReceive, ActionOrderUpdate, ActionOrderDelete,
	),
}

// Allowed indica si el rol puede ejecutar la acción.
func Allowed(role, action string) bool {
	return allowed[role][action]
}

func setOf(actions ...string) map[string]bool {
	m := make(map[string]bool, len(actions))
	for _, a := range actions {
		m[a] = true
	}
	return m
}
