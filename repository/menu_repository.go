package repository

import (
	"github.com/rodriguezalexp/little-lemon-api/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// Find lists menu items, optionally filtered by category and featured flag.
func (r *MenuRepository) Find(categoryID *uint, featured *bool) ([]entity.MenuItem, error) {
	q := r.DB.Preload("Category").Order("id")
	if categoryID != nil && *categoryID != 0 {
		q = q.Where("category_id = ?", *categoryID)
	}
	if featured != nil {
		q = q.Where("featured = ?", *featured)
	}
	items := make([]entity.MenuItem, 0)
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) UpdateFields(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
