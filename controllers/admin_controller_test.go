package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rodriguezalexp/little-lemon-api/entity"
)

func TestAdminCartViews(t *testing.T) {
	r, db := setupRouter(t)
	alice := createUser(t, db, "alice@example.com", entity.RoleCustomer)
	bob := createUser(t, db, "bob@example.com", entity.RoleCustomer)
	manager := createUser(t, db, "manager@example.com", entity.RoleManager)
	item := createMenuItem(t, db, "Greek Salad", 5.00)

	addToCart(t, r, tokenFor(t, alice), item.ID, 2)
	addToCart(t, r, tokenFor(t, bob), item.ID, 1)

	managerTok := tokenFor(t, manager)

	t.Run("customers are shut out", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/admin/carts", tokenFor(t, alice), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unscoped listing and user filter", func(t *testing.T) {
		type listBody struct {
			Data struct {
				Items []entity.CartItem `json:"items"`
			} `json:"data"`
		}

		rec := doRequest(r, http.MethodGet, "/admin/carts", managerTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var b listBody
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		assert.Len(t, b.Data.Items, 2)

		rec = doRequest(r, http.MethodGet, fmt.Sprintf("/admin/carts?userId=%d", bob.ID), managerTok, nil)
		b = listBody{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		if assert.Len(t, b.Data.Items, 1) {
			assert.Equal(t, bob.ID, b.Data.Items[0].UserID)
		}
	})

	t.Run("quantity edit recomputes the line", func(t *testing.T) {
		var line entity.CartItem
		db.Where("user_id = ?", alice.ID).First(&line)

		rec := doRequest(r, http.MethodPatch, fmt.Sprintf("/admin/carts/%d", line.ID),
			managerTok, map[string]any{"quantity": 3})
		assert.Equal(t, http.StatusOK, rec.Code)

		db.First(&line, line.ID)
		assert.Equal(t, 3, line.Quantity)
		assert.True(t, line.Price.Equal(decimal.NewFromFloat(15.00)))
	})

	t.Run("delete removes the line", func(t *testing.T) {
		var line entity.CartItem
		db.Where("user_id = ?", bob.ID).First(&line)

		rec := doRequest(r, http.MethodDelete, fmt.Sprintf("/admin/carts/%d", line.ID), managerTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var count int64
		db.Model(&entity.CartItem{}).Where("user_id = ?", bob.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestAdminGroupManagement(t *testing.T) {
	r, db := setupRouter(t)
	alice := createUser(t, db, "alice@example.com", entity.RoleCustomer)
	manager := createUser(t, db, "manager@example.com", entity.RoleManager)
	managerTok := tokenFor(t, manager)

	t.Run("promote to delivery crew", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/admin/groups/delivery-crew/users",
			managerTok, map[string]any{"email": alice.Email})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var u entity.User
		db.First(&u, alice.ID)
		assert.Equal(t, entity.RoleDeliveryCrew, u.Role)
	})

	t.Run("group listing", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/admin/groups/delivery-crew/users", managerTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), alice.Email)
	})

	t.Run("demote back to customer", func(t *testing.T) {
		rec := doRequest(r, http.MethodDelete,
			fmt.Sprintf("/admin/groups/delivery-crew/users/%d", alice.ID), managerTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var u entity.User
		db.First(&u, alice.ID)
		assert.Equal(t, entity.RoleCustomer, u.Role)
	})

	t.Run("unknown group", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/admin/groups/wizards/users", managerTok, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/admin/groups/manager/users",
			managerTok, map[string]any{"email": "ghost@example.com"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
