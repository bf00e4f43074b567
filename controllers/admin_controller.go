package controllers

import (
	"errors"
	"strconv"

	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/pkg/resp"
	"github.com/rodriguezalexp/little-lemon-api/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController serves the manager-only views: unscoped cart inspection and
// role group management.
type AdminController struct {
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewAdminController(cr *repository.CartRepository, ur *repository.UserRepository) *AdminController {
	return &AdminController{CartRepo: cr, UserRepo: ur}
}

// ---------------- carts ----------------

// GET /admin/carts?userId=
func (a *AdminController) ListCarts(c *gin.Context) {
	var userID *uint
	if v := c.Query("userId"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			userID = &id
		}
	}

	items, err := a.CartRepo.ListAll(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/carts/:id
func (a *AdminController) GetCartLine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	line, err := a.CartRepo.GetByID(uint(id))
	if err != nil {
		notFoundOrServer(c, err, "cart line not found")
		return
	}
	resp.OK(c, line)
}

// PUT/PATCH /admin/carts/:id: adjusts a line's quantity; zero deletes it.
func (a *AdminController) UpdateCartLine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := a.CartRepo.UpdateQuantityByID(uint(id), *body.Quantity)
	if err != nil {
		notFoundOrServer(c, err, "cart line not found")
		return
	}
	if line == nil {
		resp.OK(c, gin.H{"deleted": true})
		return
	}
	resp.OK(c, line)
}

// DELETE /admin/carts/:id
func (a *AdminController) DeleteCartLine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := a.CartRepo.DeleteByID(uint(id)); err != nil {
		notFoundOrServer(c, err, "cart line not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- role groups ----------------

func groupRole(c *gin.Context) (string, bool) {
	switch c.Param("role") {
	case "manager":
		return entity.RoleManager, true
	case "delivery-crew":
		return entity.RoleDeliveryCrew, true
	}
	return "", false
}

// GET /admin/groups/:role/users
func (a *AdminController) ListGroup(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		resp.NotFound(c, "unknown group")
		return
	}

	users, err := a.UserRepo.ListByRole(role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "email": u.Email, "firstName": u.FirstName, "lastName": u.LastName})
	}
	resp.OK(c, gin.H{"users": out})
}

// POST /admin/groups/:role/users: promotes an existing account.
func (a *AdminController) AddToGroup(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		resp.NotFound(c, "unknown group")
		return
	}

	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := a.UserRepo.FindByEmail(body.Email)
	if err != nil {
		notFoundOrServer(c, err, "user not found")
		return
	}
	if err := a.UserRepo.UpdateRole(u.ID, role); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": u.ID, "email": u.Email, "role": role})
}

// DELETE /admin/groups/:role/users/:id: demotes back to customer.
func (a *AdminController) RemoveFromGroup(c *gin.Context) {
	role, ok := groupRole(c)
	if !ok {
		resp.NotFound(c, "unknown group")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	u, err := a.UserRepo.FindByID(uint(id))
	if err != nil {
		notFoundOrServer(c, err, "user not found")
		return
	}
	if u.Role != role {
		resp.NotFound(c, "user not in group")
		return
	}
	if err := a.UserRepo.UpdateRole(u.ID, entity.RoleCustomer); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": u.ID, "role": entity.RoleCustomer})
}
