package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

func TestDeriveOrderStatus(t *testing.T) {
	item := func(ordered, received int64) entity.PurchaseOrderItem {
		return entity.PurchaseOrderItem{Quantity: ordered, ReceivedQuantity: received}
	}

	cases := []struct {
		name    string
		current string
		items   []entity.PurchaseOrderItem
		want    string
	}{
		{
			name:    "sin recepción conserva el estado actual",
			current: entity.OrderStatusSent,
			items:   []entity.PurchaseOrderItem{item(5, 0), item(3, 0)},
			want:    entity.OrderStatusSent,
		},
		{
			name:    "un renglón parcial",
			current: entity.OrderStatusSent,
			items:   []entity.PurchaseOrderItem{item(5, 2), item(3, 0)},
			want:    entity.OrderStatusPartiallyReceived,
		},
		{
			name:    "un renglón completo y otro pendiente",
			current: entity.OrderStatusSent,
			items:   []entity.PurchaseOrderItem{item(5, 5), item(3, 0)},
			want:    entity.OrderStatusPartiallyReceived,
		},
		{
			name:    "todos los renglones completos",
			current: entity.OrderStatusSent,
			items:   []entity.PurchaseOrderItem{item(5, 5), item(3, 3)},
			want:    entity.OrderStatusReceived,
		},
		{
			name:    "sobre-recepción cuenta como completo",
			current: entity.OrderStatusPartiallyReceived,
			items:   []entity.PurchaseOrderItem{item(5, 8)},
			want:    entity.OrderStatusReceived,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.DeriveOrderStatus(tc.current, tc.items))
		})
	}
}

func TestRequestStatusHelpers(t *testing.T) {
	assert.False(t, entity.RequestStatusTerminal(entity.RequestStatusPending))
	assert.True(t, entity.RequestStatusTerminal(entity.RequestStatusApproved))
	assert.True(t, entity.RequestStatusTerminal(entity.RequestStatusRejected))
	assert.True(t, entity.RequestStatusTerminal(entity.RequestStatusCanceled))

	assert.True(t, entity.ValidRequestStatus(entity.RequestStatusPending))
	assert.False(t, entity.ValidRequestStatus("ARCHIVED"))
	assert.False(t, entity.ValidRequestStatus(""))
}
