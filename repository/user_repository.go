package repository

import (
	"github.com/rodriguezalexp/little-lemon-api/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListByRole(role string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateRole(id uint, role string) error {
	res := r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasRole reports whether the user exists and holds the role, used when a
// manager assigns an order to a delivery crew member.
func (r *UserRepository) HasRole(id uint, role string) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("id = ? AND role = ?", id, role).Count(&n).Error
	return n > 0, err
}
