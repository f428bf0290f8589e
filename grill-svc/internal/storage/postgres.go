package storage

import (
	"database/sql"
	"fmt"

	"mikes-grill/grill-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const menuItemColumns = `
	SELECT m.id, m.name, COALESCE(m.description, ''), m.price, COALESCE(m.image_url, ''), m.featured,
	       c.id, c.name, c.sort_order
	FROM menu_items m
	JOIN menu_categories c ON c.id = m.category_id`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (domain.MenuItem, error) {
	var item domain.MenuItem
	var category domain.MenuCategory
	var sortOrder int
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.Featured,
		&category.ID, &category.Name, &sortOrder)
	if err != nil {
		return item, err
	}
	category.SortOrder = &sortOrder
	item.Category = &category
	return item, nil
}

func (r *PostgresRepository) queryMenuItems(query string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	return r.queryMenuItems(menuItemColumns + " ORDER BY m.id")
}

func (r *PostgresRepository) ListFeaturedMenuItems() ([]domain.MenuItem, error) {
	return r.queryMenuItems(menuItemColumns + " WHERE m.featured = TRUE ORDER BY m.id")
}

func (r *PostgresRepository) ListMenuItemsByCategory(category string) ([]domain.MenuItem, error) {
	return r.queryMenuItems(menuItemColumns+" WHERE LOWER(c.name) = LOWER($1) ORDER BY m.id", category)
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRow(menuItemColumns+" WHERE m.id = $1", id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, image_url, category_id, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.Name, item.Description, item.Price, item.ImageURL, item.Category.ID, item.Featured,
	).Scan(&item.ID)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, image_url=$4, category_id=$5, featured=$6
		WHERE id=$7
		RETURNING id`,
		item.Name, item.Description, item.Price, item.ImageURL, item.Category.ID, item.Featured, item.ID,
	).Scan(&item.ID)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListCategories() ([]domain.MenuCategory, error) {
	rows, err := r.DB.Query("SELECT id, name, sort_order FROM menu_categories ORDER BY sort_order, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.MenuCategory{}
	for rows.Next() {
		var category domain.MenuCategory
		var sortOrder int
		if err := rows.Scan(&category.ID, &category.Name, &sortOrder); err != nil {
			continue
		}
		category.SortOrder = &sortOrder
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(id int) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	var sortOrder int
	if err := r.DB.QueryRow("SELECT id, name, sort_order FROM menu_categories WHERE id = $1", id).
		Scan(&category.ID, &category.Name, &sortOrder); err != nil {
		return nil, err
	}
	category.SortOrder = &sortOrder
	return &category, nil
}

func (r *PostgresRepository) CreateCategory(category *domain.MenuCategory) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_categories (name, sort_order) VALUES ($1, $2) RETURNING id",
		category.Name, sortOrderValue(category.SortOrder),
	).Scan(&category.ID)
}

func (r *PostgresRepository) UpdateCategory(category *domain.MenuCategory) error {
	return r.DB.QueryRow(
		"UPDATE menu_categories SET name=$1, sort_order=$2 WHERE id=$3 RETURNING id",
		category.Name, sortOrderValue(category.SortOrder), category.ID,
	).Scan(&category.ID)
}

func (r *PostgresRepository) MaxCategorySortOrder() (int, error) {
	var max int
	err := r.DB.QueryRow("SELECT COALESCE(MAX(sort_order), 0) FROM menu_categories").Scan(&max)
	return max, err
}

func (r *PostgresRepository) CountCategories() (int, error) {
	return r.count("menu_categories")
}

func (r *PostgresRepository) ListHours() ([]domain.RestaurantHours, error) {
	rows, err := r.DB.Query(`
		SELECT id, day_of_week, COALESCE(open_time, ''), COALESCE(close_time, ''), closed, sort_order
		FROM restaurant_hours
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := []domain.RestaurantHours{}
	for rows.Next() {
		var h domain.RestaurantHours
		if err := rows.Scan(&h.ID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.Closed, &h.SortOrder); err != nil {
			continue
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (r *PostgresRepository) UpdateHours(hours *domain.RestaurantHours) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE restaurant_hours SET open_time=$1, close_time=$2, closed=$3 WHERE id=$4",
		hours.OpenTime, hours.CloseTime, hours.Closed, hours.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateHoursBatch applies every row in one transaction; any failure leaves
// all rows as they were.
func (r *PostgresRepository) UpdateHoursBatch(hours []domain.RestaurantHours) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, h := range hours {
		if _, err := tx.Exec(
			"UPDATE restaurant_hours SET open_time=$1, close_time=$2, closed=$3 WHERE id=$4",
			h.OpenTime, h.CloseTime, h.Closed, h.ID); err != nil {
			return fmt.Errorf("update hours %d: %w", h.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) InsertHours(hours *domain.RestaurantHours) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurant_hours (day_of_week, open_time, close_time, closed, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		hours.DayOfWeek, hours.OpenTime, hours.CloseTime, hours.Closed, hours.SortOrder,
	).Scan(&hours.ID)
}

func (r *PostgresRepository) CountHours() (int, error) {
	return r.count("restaurant_hours")
}

func (r *PostgresRepository) GetSettings() (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	var hero sql.NullString
	if err := r.DB.QueryRow("SELECT id, hero_image_url FROM site_settings ORDER BY id LIMIT 1").
		Scan(&settings.ID, &hero); err != nil {
		return nil, err
	}
	if hero.Valid {
		settings.HeroImageURL = &hero.String
	}
	return &settings, nil
}

func (r *PostgresRepository) CreateSettings(settings *domain.SiteSettings) error {
	return r.DB.QueryRow(
		"INSERT INTO site_settings (hero_image_url) VALUES ($1) RETURNING id",
		nullableString(settings.HeroImageURL),
	).Scan(&settings.ID)
}

func (r *PostgresRepository) UpdateHeroImage(id int, heroImageURL *string) error {
	_, err := r.DB.Exec("UPDATE site_settings SET hero_image_url=$1 WHERE id=$2", nullableString(heroImageURL), id)
	return err
}

func (r *PostgresRepository) CreateContact(msg *domain.ContactMessage) error {
	return r.DB.QueryRow(`
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PostgresRepository) ListContacts() ([]domain.ContactMessage, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ContactMessage{}
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *PostgresRepository) DeleteContact(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM contact_messages WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListAdmins() ([]domain.AdminUser, error) {
	rows, err := r.DB.Query("SELECT id, username FROM admin_users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.AdminUser{}
	for rows.Next() {
		var user domain.AdminUser
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetAdmin(id int) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.DB.QueryRow("SELECT id, username, password_hash FROM admin_users WHERE id = $1", id).
		Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetAdminByUsername(username string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.DB.QueryRow("SELECT id, username, password_hash FROM admin_users WHERE username = $1", username).
		Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateAdmin(user *domain.AdminUser) error {
	return r.DB.QueryRow(
		"INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id",
		user.Username, user.PasswordHash,
	).Scan(&user.ID)
}

func (r *PostgresRepository) DeleteAdmin(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM admin_users WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountAdmins() (int, error) {
	return r.count("admin_users")
}

func (r *PostgresRepository) count(table string) (int, error) {
	var n int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL DEFAULT 0,
			image_url TEXT,
			category_id INTEGER NOT NULL REFERENCES menu_categories(id),
			featured BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_hours (
			id SERIAL PRIMARY KEY,
			day_of_week VARCHAR(20) NOT NULL,
			open_time VARCHAR(20),
			close_time VARCHAR(20),
			closed BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS site_settings (
			id SERIAL PRIMARY KEY,
			hero_image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			email VARCHAR(320) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func sortOrderValue(sortOrder *int) int {
	if sortOrder == nil {
		return 0
	}
	return *sortOrder
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
