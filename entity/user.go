package entity

import (
	"gorm.io/gorm"
)

// Roles an account can hold. Every account starts as a customer; managers
// promote accounts through the admin group endpoints.
const (
	RoleCustomer     = "customer"
	RoleManager      = "manager"
	RoleDeliveryCrew = "delivery_crew"
)

func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleManager || role == RoleDeliveryCrew
}

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:customer" json:"role"`

	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}
