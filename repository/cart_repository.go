package repository

import (
	"errors"

	"github.com/rodriguezalexp/little-lemon-api/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's cart lines in creation order.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	items := make([]entity.CartItem, 0)
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) CountForUser(userID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// ListForUpdate reads the user's lines under an exclusive row lock so a
// concurrent add or clear cannot interleave with the conversion that follows.
// sqlite rejects FOR UPDATE; its single-writer file lock already serializes
// the transaction, so the clause is only applied elsewhere.
func (r *CartRepository) ListForUpdate(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	q := tx.Where("user_id = ?", userID).Order("id")
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var items []entity.CartItem
	err := q.Find(&items).Error
	return items, err
}

// Upsert merges an add into the existing (user, menu item) line or creates
// one. On merge the unit price is refreshed to the current menu price and the
// line total recomputed, so a price edit between adds never leaves a line
// billed at two different rates.
func (r *CartRepository) Upsert(tx *gorm.DB, userID, menuItemID uint, qty int, unitPrice decimal.Decimal) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		exist.UnitPrice = unitPrice
		exist.Price = unitPrice.Mul(decimal.NewFromInt(int64(exist.Quantity)))
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	line := entity.CartItem{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		Price:      unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
	return tx.Create(&line).Error
}

// UpdateQuantity sets a line's quantity; zero or less deletes the line
// instead of keeping a zero-quantity record.
func (r *CartRepository) UpdateQuantity(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	var line entity.CartItem
	if err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&line).Error; err != nil {
		return err
	}
	line.Quantity = qty
	line.Price = line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	return tx.Save(&line).Error
}

// Cart line deletes are hard deletes: a soft-deleted row would keep occupying
// the (user, menu item) unique index and block re-adding the same item.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	res := tx.Unscoped().Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

// DeleteLines removes exactly the given lines, used by order conversion after
// it has copied them.
func (r *CartRepository) DeleteLines(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Unscoped().Where("id IN ?", ids).Delete(&entity.CartItem{}).Error
}

// ---------------- admin (unscoped) ----------------

func (r *CartRepository) ListAll(userID *uint) ([]entity.CartItem, error) {
	q := r.DB.Preload("MenuItem").Order("id")
	if userID != nil && *userID != 0 {
		q = q.Where("user_id = ?", *userID)
	}
	items := make([]entity.CartItem, 0)
	err := q.Find(&items).Error
	return items, err
}

func (r *CartRepository) GetByID(id uint) (*entity.CartItem, error) {
	var line entity.CartItem
	if err := r.DB.Preload("MenuItem").First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) UpdateQuantityByID(id uint, qty int) (*entity.CartItem, error) {
	var line entity.CartItem
	if err := r.DB.First(&line, id).Error; err != nil {
		return nil, err
	}
	if qty <= 0 {
		if err := r.DB.Unscoped().Delete(&line).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}
	line.Quantity = qty
	line.Price = line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	if err := r.DB.Save(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) DeleteByID(id uint) error {
	res := r.DB.Unscoped().Delete(&entity.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
