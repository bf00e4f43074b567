package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodriguezalexp/little-lemon-api/entity"
)

func TestRegisterLoginFlow(t *testing.T) {
	r, db := setupRouter(t)

	rec := doRequest(r, http.MethodPost, "/auth/register", "", map[string]any{
		"email": "Alice@Example.com", "password": "secret123",
		"firstName": "Alice", "lastName": "Doe",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var u entity.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&u).Error)
	assert.Equal(t, entity.RoleCustomer, u.Role)
	assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")

	t.Run("duplicate email rejected", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/auth/register", "", map[string]any{
			"email": "alice@example.com", "password": "secret123",
			"firstName": "Alice", "lastName": "Doe",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login issues a working token", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/auth/login", "", map[string]any{
			"email": "alice@example.com", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Token)

		me := doRequest(r, http.MethodGet, "/auth/me", body.Token, nil)
		assert.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), "alice@example.com")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/auth/login", "", map[string]any{
			"email": "alice@example.com", "password": "nope-nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
