package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodriguezalexp/little-lemon-api/entity"
)

func TestAllows(t *testing.T) {
	cases := []struct {
		role, action, resource string
		want                   bool
	}{
		{entity.RoleManager, entity.ActionWrite, entity.ResourceMenu, true},
		{entity.RoleManager, entity.ActionWrite, entity.ResourceOrderAssignment, true},
		{entity.RoleManager, entity.ActionRead, entity.ResourceAdminCart, true},
		{entity.RoleManager, entity.ActionDelete, entity.ResourceOrder, true},

		{entity.RoleDeliveryCrew, entity.ActionRead, entity.ResourceMenu, true},
		{entity.RoleDeliveryCrew, entity.ActionWrite, entity.ResourceMenu, false},
		{entity.RoleDeliveryCrew, entity.ActionWrite, entity.ResourceOrderStatus, true},
		{entity.RoleDeliveryCrew, entity.ActionWrite, entity.ResourceOrderAssignment, false},
		{entity.RoleDeliveryCrew, entity.ActionRead, entity.ResourceCart, false},

		{entity.RoleCustomer, entity.ActionWrite, entity.ResourceCart, true},
		{entity.RoleCustomer, entity.ActionDelete, entity.ResourceCart, true},
		{entity.RoleCustomer, entity.ActionWrite, entity.ResourceOrder, true},
		{entity.RoleCustomer, entity.ActionDelete, entity.ResourceOrder, false},
		{entity.RoleCustomer, entity.ActionWrite, entity.ResourceMenu, false},
		{entity.RoleCustomer, entity.ActionWrite, entity.ResourceOrderStatus, false},
		{entity.RoleCustomer, entity.ActionRead, entity.ResourceAdminCart, false},

		{"", entity.ActionRead, entity.ResourceMenu, false},
		{"intern", entity.ActionRead, entity.ResourceMenu, false},
	}

	for _, tc := range cases {
		got := entity.Allows(tc.role, tc.action, tc.resource)
		assert.Equalf(t, tc.want, got, "Allows(%q, %q, %q)", tc.role, tc.action, tc.resource)
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.Equal(t, entity.StatusOutForDelivery, entity.NextStatus(entity.StatusPlaced))
	assert.Equal(t, entity.StatusDelivered, entity.NextStatus(entity.StatusOutForDelivery))
	assert.Equal(t, "", entity.NextStatus(entity.StatusDelivered))
	assert.Equal(t, "", entity.NextStatus("Teleported"))

	assert.True(t, entity.ValidStatus(entity.StatusPlaced))
	assert.False(t, entity.ValidStatus("placed"))
}
