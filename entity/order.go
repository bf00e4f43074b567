package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Delivery lifecycle. An order is created as Placed; a manager or the
// assigned delivery crew member moves it forward, never backward.
const (
	StatusPlaced         = "Placed"
	StatusOutForDelivery = "OutForDelivery"
	StatusDelivered      = "Delivered"
)

func ValidStatus(s string) bool {
	return s == StatusPlaced || s == StatusOutForDelivery || s == StatusDelivered
}

// NextStatus returns the single forward transition from s, or "" when s is
// terminal or unknown.
func NextStatus(s string) string {
	switch s {
	case StatusPlaced:
		return StatusOutForDelivery
	case StatusOutForDelivery:
		return StatusDelivered
	}
	return ""
}

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status string          `gorm:"not null;default:Placed" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"total"`
	Date   time.Time       `gorm:"not null" json:"date"`

	OrderItems []OrderItem `json:"-"`
}
