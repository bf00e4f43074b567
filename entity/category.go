package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`

	MenuItems []MenuItem `json:"-"`
}
