package views

import (
	"context"
	"log"
	"net/mail"
	"strings"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/menu"
)

type HomeView struct {
	client *api.Client

	Hours    []domain.RestaurantHours
	Settings *domain.SiteSettings
	Featured []domain.MenuItem
}

func NewHomeView(client *api.Client) *HomeView {
	return &HomeView{client: client}
}

// Load fetches each section independently and keeps whatever succeeded.
func (v *HomeView) Load(ctx context.Context) error {
	var failed error

	if hours, err := v.client.PublicHours(ctx); err != nil {
		failed = fail(err, MsgHomeLoad)
	} else {
		v.Hours = hours
	}
	if settings, err := v.client.PublicSettings(ctx); err != nil {
		failed = fail(err, MsgHomeLoad)
	} else {
		v.Settings = settings
	}
	if featured, err := v.client.FeaturedMenu(ctx); err != nil {
		failed = fail(err, MsgHomeLoad)
	} else {
		v.Featured = menu.SortForDisplay(featured)
	}
	return failed
}

type MenuView struct {
	client *api.Client

	Items      []domain.MenuItem
	Categories []domain.MenuCategory
}

func NewMenuView(client *api.Client) *MenuView {
	return &MenuView{client: client}
}

func (v *MenuView) Load(ctx context.Context) error {
	items, err := v.client.PublicMenu(ctx)
	if err != nil {
		return fail(err, MsgMenuLoad)
	}
	v.Items = items
	categories, err := v.client.PublicCategories(ctx)
	if err != nil {
		return fail(err, MsgCategoriesLoad)
	}
	v.Categories = categories
	return nil
}

// CategoryNames lists the filter choices, "All" first.
func (v *MenuView) CategoryNames() []string {
	names := []string{menu.AllCategories}
	for _, c := range v.Categories {
		names = append(names, c.Name)
	}
	return names
}

func (v *MenuView) Display(category, term string) []domain.MenuItem {
	return menu.SortForDisplay(menu.Search(menu.InCategory(v.Items, category), term))
}

type ContactForm struct {
	client *api.Client

	Name    string
	Email   string
	Message string
}

func NewContactForm(client *api.Client) *ContactForm {
	return &ContactForm{client: client}
}

// Submit sends the form once. Fields are cleared on success and kept on failure.
func (f *ContactForm) Submit(ctx context.Context) error {
	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return MsgContactFieldsMissing
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return MsgContactEmailInvalid
	}

	if err := f.client.SubmitContact(ctx, msg); err != nil {
		log.Printf("ERROR: %s: %v", MsgContactSend, err)
		return MsgContactSend
	}

	f.Name, f.Email, f.Message = "", "", ""
	return nil
}
