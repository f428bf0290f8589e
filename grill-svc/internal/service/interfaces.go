package service

import (
	"context"
	"io"

	"mikes-grill/grill-svc/internal/domain"
)

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	ListFeaturedMenuItems() ([]domain.MenuItem, error)
	ListMenuItemsByCategory(category string) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
}

type CategoryRepository interface {
	ListCategories() ([]domain.MenuCategory, error)
	GetCategory(id int) (*domain.MenuCategory, error)
	CreateCategory(category *domain.MenuCategory) error
	UpdateCategory(category *domain.MenuCategory) error
	MaxCategorySortOrder() (int, error)
	CountCategories() (int, error)
}

type HoursRepository interface {
	ListHours() ([]domain.RestaurantHours, error)
	UpdateHours(hours *domain.RestaurantHours) (int64, error)
	UpdateHoursBatch(hours []domain.RestaurantHours) error
	InsertHours(hours *domain.RestaurantHours) error
	CountHours() (int, error)
}

type SettingsRepository interface {
	GetSettings() (*domain.SiteSettings, error)
	CreateSettings(settings *domain.SiteSettings) error
	UpdateHeroImage(id int, heroImageURL *string) error
}

type ContactRepository interface {
	CreateContact(msg *domain.ContactMessage) error
	ListContacts() ([]domain.ContactMessage, error)
	DeleteContact(id int) (int64, error)
}

type AdminRepository interface {
	ListAdmins() ([]domain.AdminUser, error)
	GetAdmin(id int) (*domain.AdminUser, error)
	GetAdminByUsername(username string) (*domain.AdminUser, error)
	CreateAdmin(user *domain.AdminUser) error
	DeleteAdmin(id int) (int64, error)
	CountAdmins() (int, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type LoginThrottle interface {
	WaitSeconds(ctx context.Context, username string) (int, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type ContactPublisher interface {
	PublishContact(ctx context.Context, event domain.ContactEvent) error
}

type ContactCounter interface {
	Summary(ctx context.Context) (domain.ContactSummary, error)
	ResetUnread(ctx context.Context) error
}

type ImageStore interface {
	Save(filename string, content io.Reader) (string, error)
}

type MenuServiceInterface interface {
	List() ([]domain.MenuItem, error)
	ListFeatured() ([]domain.MenuItem, error)
	ListByCategory(category string) ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id int) error
}

type CategoryServiceInterface interface {
	List() ([]domain.MenuCategory, error)
	Create(category *domain.MenuCategory) error
	Update(id int, incoming *domain.MenuCategory) (*domain.MenuCategory, error)
}

type HoursServiceInterface interface {
	List() ([]domain.RestaurantHours, error)
	SaveAll(hours []domain.RestaurantHours) ([]domain.RestaurantHours, error)
	Update(id int, hours *domain.RestaurantHours) (*domain.RestaurantHours, error)
}

type SettingsServiceInterface interface {
	Get() (*domain.SiteSettings, error)
	UpdateHeroImage(heroImageURL *string) (*domain.SiteSettings, error)
	UploadHeroImage(filename, contentType string, content io.Reader) (*domain.SiteSettings, error)
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Delete(id int) error
	Summary(ctx context.Context) (domain.ContactSummary, error)
}

type AdminServiceInterface interface {
	List() ([]domain.AdminUser, error)
	Create(req domain.CreateAdminRequest) (*domain.AdminUser, error)
	Delete(id int, acting *domain.Session) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}
