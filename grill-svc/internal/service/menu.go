package service

import (
	"strings"

	"mikes-grill/grill-svc/internal/domain"
)

type MenuService struct {
	items      MenuRepository
	categories CategoryRepository
}

func NewMenuService(items MenuRepository, categories CategoryRepository) *MenuService {
	return &MenuService{items: items, categories: categories}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.items.ListMenuItems()
}

func (s *MenuService) ListFeatured() ([]domain.MenuItem, error) {
	return s.items.ListFeaturedMenuItems()
}

func (s *MenuService) ListByCategory(category string) ([]domain.MenuItem, error) {
	return s.items.ListMenuItemsByCategory(category)
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	item, err := s.items.GetMenuItem(id)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if err := s.prepare(item); err != nil {
		return err
	}
	return s.items.CreateMenuItem(item)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if err := s.prepare(item); err != nil {
		return err
	}
	return notFound(s.items.UpdateMenuItem(item))
}

func (s *MenuService) Delete(id int) error {
	rows, err := s.items.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// prepare validates the payload and swaps the submitted category for the stored one.
func (s *MenuService) prepare(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Category == nil || item.Category.ID <= 0 {
		return ErrInvalidCategory
	}
	category, err := s.categories.GetCategory(item.Category.ID)
	if err != nil {
		if notFound(err) == ErrNotFound {
			return ErrInvalidCategory
		}
		return err
	}
	item.Category = category
	return validateStruct(item)
}

var _ MenuServiceInterface = (*MenuService)(nil)
