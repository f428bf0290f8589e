package mocks

import (
	"mikes-grill/grill-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	ret := m.Called()
	return menuItems(ret.Get(0)), ret.Error(1)
}

func (m *MenuRepository) ListFeaturedMenuItems() ([]domain.MenuItem, error) {
	ret := m.Called()
	return menuItems(ret.Get(0)), ret.Error(1)
}

func (m *MenuRepository) ListMenuItemsByCategory(category string) ([]domain.MenuItem, error) {
	ret := m.Called(category)
	return menuItems(ret.Get(0)), ret.Error(1)
}

func (m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	ret := m.Called(id)
	var item *domain.MenuItem
	if v := ret.Get(0); v != nil {
		item = v.(*domain.MenuItem)
	}
	return item, ret.Error(1)
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) DeleteMenuItem(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CategoryRepository) ListCategories() ([]domain.MenuCategory, error) {
	ret := m.Called()
	var categories []domain.MenuCategory
	if v := ret.Get(0); v != nil {
		categories = v.([]domain.MenuCategory)
	}
	return categories, ret.Error(1)
}

func (m *CategoryRepository) GetCategory(id int) (*domain.MenuCategory, error) {
	ret := m.Called(id)
	var category *domain.MenuCategory
	if v := ret.Get(0); v != nil {
		category = v.(*domain.MenuCategory)
	}
	return category, ret.Error(1)
}

func (m *CategoryRepository) CreateCategory(category *domain.MenuCategory) error {
	return m.Called(category).Error(0)
}

func (m *CategoryRepository) UpdateCategory(category *domain.MenuCategory) error {
	return m.Called(category).Error(0)
}

func (m *CategoryRepository) MaxCategorySortOrder() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *CategoryRepository) CountCategories() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

type HoursRepository struct {
	mock.Mock
}

func NewHoursRepository(t testingT) *HoursRepository {
	m := &HoursRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HoursRepository) ListHours() ([]domain.RestaurantHours, error) {
	ret := m.Called()
	var hours []domain.RestaurantHours
	if v := ret.Get(0); v != nil {
		hours = v.([]domain.RestaurantHours)
	}
	return hours, ret.Error(1)
}

func (m *HoursRepository) UpdateHours(hours *domain.RestaurantHours) (int64, error) {
	ret := m.Called(hours)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *HoursRepository) UpdateHoursBatch(hours []domain.RestaurantHours) error {
	return m.Called(hours).Error(0)
}

func (m *HoursRepository) InsertHours(hours *domain.RestaurantHours) error {
	return m.Called(hours).Error(0)
}

func (m *HoursRepository) CountHours() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

type SettingsRepository struct {
	mock.Mock
}

func NewSettingsRepository(t testingT) *SettingsRepository {
	m := &SettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SettingsRepository) GetSettings() (*domain.SiteSettings, error) {
	ret := m.Called()
	var settings *domain.SiteSettings
	if v := ret.Get(0); v != nil {
		settings = v.(*domain.SiteSettings)
	}
	return settings, ret.Error(1)
}

func (m *SettingsRepository) CreateSettings(settings *domain.SiteSettings) error {
	return m.Called(settings).Error(0)
}

func (m *SettingsRepository) UpdateHeroImage(id int, heroImageURL *string) error {
	return m.Called(id, heroImageURL).Error(0)
}

type ContactRepository struct {
	mock.Mock
}

func NewContactRepository(t testingT) *ContactRepository {
	m := &ContactRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ContactRepository) CreateContact(msg *domain.ContactMessage) error {
	return m.Called(msg).Error(0)
}

func (m *ContactRepository) ListContacts() ([]domain.ContactMessage, error) {
	ret := m.Called()
	var messages []domain.ContactMessage
	if v := ret.Get(0); v != nil {
		messages = v.([]domain.ContactMessage)
	}
	return messages, ret.Error(1)
}

func (m *ContactRepository) DeleteContact(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func NewAdminRepository(t testingT) *AdminRepository {
	m := &AdminRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AdminRepository) ListAdmins() ([]domain.AdminUser, error) {
	ret := m.Called()
	var users []domain.AdminUser
	if v := ret.Get(0); v != nil {
		users = v.([]domain.AdminUser)
	}
	return users, ret.Error(1)
}

func (m *AdminRepository) GetAdmin(id int) (*domain.AdminUser, error) {
	ret := m.Called(id)
	var user *domain.AdminUser
	if v := ret.Get(0); v != nil {
		user = v.(*domain.AdminUser)
	}
	return user, ret.Error(1)
}

func (m *AdminRepository) GetAdminByUsername(username string) (*domain.AdminUser, error) {
	ret := m.Called(username)
	var user *domain.AdminUser
	if v := ret.Get(0); v != nil {
		user = v.(*domain.AdminUser)
	}
	return user, ret.Error(1)
}

func (m *AdminRepository) CreateAdmin(user *domain.AdminUser) error {
	return m.Called(user).Error(0)
}

func (m *AdminRepository) DeleteAdmin(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *AdminRepository) CountAdmins() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func menuItems(v interface{}) []domain.MenuItem {
	if v == nil {
		return nil
	}
	return v.([]domain.MenuItem)
}
