package controllers

import (
	"errors"
	"strconv"

	"github.com/rodriguezalexp/little-lemon-api/pkg/resp"
	"github.com/rodriguezalexp/little-lemon-api/services"
	"github.com/rodriguezalexp/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders: converts the caller's cart into an order.
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := h.Svc.PlaceOrder(uid)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		// Any failure inside the conversion transaction rolled it back.
		resp.Conflict(c, "could not place order")
		return
	}
	resp.Created(c, gin.H{"id": order.ID, "status": order.Status, "total": order.Total})
}

// GET /orders: role-filtered listing.
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListFor(uid, role, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := h.Svc.DetailFor(uid, role, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id: status/assignment changes, gated by role.
func (h *OrderController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Update(uid, role, uint(id), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrForbiddenField):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrNotDeliveryCrew):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /orders/:id: manager only (enforced by the route gate).
func (h *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
