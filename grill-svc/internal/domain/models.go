package domain

import "time"

type MenuCategory struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,max=100"`
	SortOrder *int   `json:"sortOrder,omitempty"`
}

type MenuItem struct {
	ID          int           `json:"id"`
	Name        string        `json:"name" validate:"required,max=200"`
	Description string        `json:"description"`
	Price       float64       `json:"price" validate:"gte=0"`
	ImageURL    string        `json:"imageUrl"`
	Category    *MenuCategory `json:"category" validate:"required"`
	Featured    bool          `json:"featured"`
}

type RestaurantHours struct {
	ID        int    `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed"`
	SortOrder int    `json:"sortOrder"`
}

// Normalize clears the times of a closed day.
func (h *RestaurantHours) Normalize() {
	if h.Closed {
		h.OpenTime = ""
		h.CloseTime = ""
	}
}

type SiteSettings struct {
	ID           int     `json:"id"`
	HeroImageURL *string `json:"heroImageUrl"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name" validate:"required,max=200"`
	Email     string    `json:"email" validate:"required,email"`
	Message   string    `json:"message" validate:"required,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactSummary struct {
	Unread int64 `json:"unread"`
	Today  int64 `json:"today"`
}

type AdminUser struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactEvent struct {
	Type      string    `json:"type"`
	ContactID int       `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
