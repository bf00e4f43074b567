package controllers

import (
	"strconv"

	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/pkg/resp"
	"github.com/rodriguezalexp/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuItemController struct{ Svc *services.MenuService }

func NewMenuItemController(s *services.MenuService) *MenuItemController {
	return &MenuItemController{Svc: s}
}

type menuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

// GET /menu-items?category=&featured=
func (ctl *MenuItemController) List(c *gin.Context) {
	var (
		categoryID *uint
		featured   *bool
	)
	if v := c.Query("category"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			categoryID = &id
		}
	}
	if v := c.Query("featured"); v != "" {
		b := v == "true" || v == "1"
		featured = &b
	}

	items, err := ctl.Svc.List(categoryID, featured)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu-items/:id
func (ctl *MenuItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (ctl *MenuItemController) Create(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	item := entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := ctl.Svc.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id
func (ctl *MenuItemController) Replace(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}

	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.CategoryID
	if err := ctl.Svc.Replace(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id
func (ctl *MenuItemController) Patch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Title      *string          `json:"title"`
		Price      *decimal.Decimal `json:"price"`
		Featured   *bool            `json:"featured"`
		CategoryID *uint            `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			resp.BadRequest(c, "price must not be negative")
			return
		}
		fields["price"] = *req.Price
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Svc.Patch(uint(id), fields); err != nil {
		notFoundOrServer(c, err, "menu item not found")
		return
	}

	item, err := ctl.Svc.Get(uint(id))
	if err != nil {
		notFoundOrServer(c, err, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(uint(id)); err != nil {
		notFoundOrServer(c, err, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
