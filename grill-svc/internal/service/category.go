package service

import (
	"fmt"
	"log"
	"strings"

	"mikes-grill/grill-svc/internal/domain"
)

var DefaultCategories = []string{
	"Breakfast", "Drinks", "Desserts", "Sandwiches",
	"Extras", "Sides", "Dinner", "Kids", "Salads",
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List() ([]domain.MenuCategory, error) {
	return s.repo.ListCategories()
}

// Create appends the category after the current last one unless a sort order is given.
func (s *CategoryService) Create(category *domain.MenuCategory) error {
	category.Name = strings.TrimSpace(category.Name)
	if err := validateStruct(category); err != nil {
		return err
	}
	if category.SortOrder == nil {
		max, err := s.repo.MaxCategorySortOrder()
		if err != nil {
			return err
		}
		next := max + 1
		category.SortOrder = &next
	}
	return s.repo.CreateCategory(category)
}

func (s *CategoryService) Update(id int, incoming *domain.MenuCategory) (*domain.MenuCategory, error) {
	existing, err := s.repo.GetCategory(id)
	if err != nil {
		return nil, notFound(err)
	}
	if name := strings.TrimSpace(incoming.Name); name != "" {
		existing.Name = name
	}
	if incoming.SortOrder != nil {
		existing.SortOrder = incoming.SortOrder
	}
	if err := s.repo.UpdateCategory(existing); err != nil {
		return nil, notFound(err)
	}
	return existing, nil
}

func (s *CategoryService) EnsureDefaults() error {
	count, err := s.repo.CountCategories()
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	for i, name := range DefaultCategories {
		order := i + 1
		if err := s.repo.CreateCategory(&domain.MenuCategory{Name: name, SortOrder: &order}); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	log.Printf("Seeded %d default menu categories", len(DefaultCategories))
	return nil
}

var _ CategoryServiceInterface = (*CategoryService)(nil)
