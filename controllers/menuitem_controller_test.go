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

func TestMenuItemWriteIsManagerOnly(t *testing.T) {
	r, db := setupRouter(t)
	customer := createUser(t, db, "alice@example.com", entity.RoleCustomer)
	crew := createUser(t, db, "crew@example.com", entity.RoleDeliveryCrew)
	manager := createUser(t, db, "manager@example.com", entity.RoleManager)

	cat := entity.Category{Title: "Mains", Slug: "mains"}
	db.Create(&cat)
	body := map[string]any{"title": "Greek Salad", "price": "12.50", "categoryId": cat.ID}

	for _, u := range []entity.User{customer, crew} {
		rec := doRequest(r, http.MethodPost, "/menu-items", tokenFor(t, u), body)
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", u.Role)
	}

	rec := doRequest(r, http.MethodPost, "/menu-items", tokenFor(t, manager), body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var item entity.MenuItem
	assert.NoError(t, db.Where("title = ?", "Greek Salad").First(&item).Error)
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(12.50)))
}

func TestMenuItemReadRequiresAuth(t *testing.T) {
	r, db := setupRouter(t)
	customer := createUser(t, db, "alice@example.com", entity.RoleCustomer)
	createMenuItem(t, db, "Greek Salad", 5.00)

	rec := doRequest(r, http.MethodGet, "/menu-items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(r, http.MethodGet, "/menu-items", tokenFor(t, customer), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Greek Salad")
}

func TestMenuItemFilters(t *testing.T) {
	r, db := setupRouter(t)
	customer := createUser(t, db, "alice@example.com", entity.RoleCustomer)
	token := tokenFor(t, customer)

	salad := createMenuItem(t, db, "Greek Salad", 5.00)
	db.Model(&entity.MenuItem{}).Where("id = ?", salad.ID).Update("featured", true)
	createMenuItem(t, db, "Lemonade", 3.25)

	type listBody struct {
		Data struct {
			Items []entity.MenuItem `json:"items"`
		} `json:"data"`
	}

	rec := doRequest(r, http.MethodGet, "/menu-items?featured=true", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var b listBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	if assert.Len(t, b.Data.Items, 1) {
		assert.Equal(t, "Greek Salad", b.Data.Items[0].Title)
	}

	rec = doRequest(r, http.MethodGet, fmt.Sprintf("/menu-items?category=%d", salad.CategoryID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	b = listBody{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Len(t, b.Data.Items, 1)
}

func TestMenuItemPatchPrice(t *testing.T) {
	r, db := setupRouter(t)
	manager := createUser(t, db, "manager@example.com", entity.RoleManager)
	item := createMenuItem(t, db, "Greek Salad", 5.00)

	rec := doRequest(r, http.MethodPatch, fmt.Sprintf("/menu-items/%d", item.ID),
		tokenFor(t, manager), map[string]any{"price": "6.75"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored entity.MenuItem
	db.First(&stored, item.ID)
	assert.True(t, stored.Price.Equal(decimal.NewFromFloat(6.75)), "price %s", stored.Price)

	rec = doRequest(r, http.MethodPatch, fmt.Sprintf("/menu-items/%d", item.ID),
		tokenFor(t, manager), map[string]any{"price": "-1.00"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
