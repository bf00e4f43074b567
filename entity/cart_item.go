package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one cart line: a (user, menu item) pair with a quantity and the
// unit price snapshotted when the line was last touched. At most one line per
// pair exists; repeated adds merge into the existing line.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
