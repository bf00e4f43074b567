package services

import (
	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(categoryID *uint, featured *bool) ([]entity.MenuItem, error) {
	return s.Repo.Find(categoryID, featured)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

func (s *MenuService) Replace(item *entity.MenuItem) error {
	return s.Repo.Save(item)
}

func (s *MenuService) Patch(id uint, fields map[string]any) error {
	return s.Repo.UpdateFields(id, fields)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
