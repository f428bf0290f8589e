package views

import (
	"context"
	"strings"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/menu"
)

// MenuForm is the add/edit form. ID zero means a new item.
type MenuForm struct {
	ID          int
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CategoryID  int
	Featured    bool
}

type MenuManager struct {
	client  *api.Client
	confirm Confirmer

	Items      []domain.MenuItem
	Categories []domain.MenuCategory
	Form       MenuForm
}

func NewMenuManager(client *api.Client, confirm Confirmer) *MenuManager {
	return &MenuManager{client: client, confirm: confirm}
}

func (m *MenuManager) Load(ctx context.Context) error {
	categories, err := m.client.Categories().List(ctx)
	if err != nil {
		return fail(err, MsgCategoriesLoad)
	}
	m.Categories = categories
	return m.refresh(ctx)
}

func (m *MenuManager) refresh(ctx context.Context) error {
	items, err := m.client.Menu().List(ctx)
	if err != nil {
		return fail(err, MsgMenuLoad)
	}
	m.Items = items
	return nil
}

// Edit fills the form from a loaded item.
func (m *MenuManager) Edit(id int) bool {
	for _, item := range m.Items {
		if item.ID != id {
			continue
		}
		m.Form = MenuForm{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
			Featured:    item.Featured,
		}
		if item.Category != nil {
			m.Form.CategoryID = item.Category.ID
		}
		return true
	}
	return false
}

func (m *MenuManager) category(id int) *domain.MenuCategory {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			category := m.Categories[i]
			return &category
		}
	}
	return nil
}

// Submit creates or updates the item in the form. The form is cleared only on success.
func (m *MenuManager) Submit(ctx context.Context) error {
	if strings.TrimSpace(m.Form.Name) == "" {
		return MsgNameRequired
	}
	category := m.category(m.Form.CategoryID)
	if category == nil {
		return MsgChooseCategory
	}

	item := domain.MenuItem{
		Name:        strings.TrimSpace(m.Form.Name),
		Description: m.Form.Description,
		Price:       m.Form.Price,
		ImageURL:    m.Form.ImageURL,
		Category:    category,
		Featured:    m.Form.Featured,
	}

	var err error
	if m.Form.ID == 0 {
		_, err = m.client.Menu().Create(ctx, item)
	} else {
		_, err = m.client.Menu().Update(ctx, m.Form.ID, item)
	}
	if err != nil {
		return fail(err, MsgMenuSave)
	}

	m.Form = MenuForm{}
	return m.refresh(ctx)
}

func (m *MenuManager) Delete(ctx context.Context, id int) error {
	if !m.confirm.Confirm("Are you sure you want to delete this menu item?") {
		return ErrCancelled
	}
	if err := m.client.Menu().Delete(ctx, id); err != nil {
		return fail(err, MsgMenuDelete)
	}
	return m.refresh(ctx)
}

func (m *MenuManager) Filtered(term, category string) []domain.MenuItem {
	return menu.Search(menu.InCategory(m.Items, category), term)
}
