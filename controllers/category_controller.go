package controllers

import (
	"errors"
	"strconv"

	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ DB *gorm.DB }

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

type categoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	var cats []entity.Category
	if err := ctl.DB.Order("id").Find(&cats).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cat entity.Category
	if err := ctl.DB.First(&cat, uint(id)).Error; err != nil {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, cat)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Title: req.Title, Slug: req.Slug}
	if err := ctl.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /categories/:id and PATCH /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cat entity.Category
	if err := ctl.DB.First(&cat, uint(id)).Error; err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	var req struct {
		Title *string `json:"title"`
		Slug  *string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Title != nil {
		cat.Title = *req.Title
	}
	if req.Slug != nil {
		cat.Slug = *req.Slug
	}

	if err := ctl.DB.Save(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.Category{}, uint(id))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func notFoundOrServer(c *gin.Context, err error, msg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, msg)
		return
	}
	resp.ServerError(c, err)
}
