package domain

import "time"

type MenuCategory struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder,omitempty"`
}

type MenuItem struct {
	ID          int           `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"imageUrl"`
	Category    *MenuCategory `json:"category"`
	Featured    bool          `json:"featured"`
}

// CategoryName is empty for items without a category.
func (m MenuItem) CategoryName() string {
	if m.Category == nil {
		return ""
	}
	return m.Category.Name
}

type RestaurantHours struct {
	ID        int    `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed"`
	SortOrder int    `json:"sortOrder"`
}

type SiteSettings struct {
	ID           int     `json:"id"`
	HeroImageURL *string `json:"heroImageUrl"`
}

type ContactMessage struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactSummary struct {
	Unread int64 `json:"unread"`
	Today  int64 `json:"today"`
}

type AdminUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
