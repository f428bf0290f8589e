package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"mikes-grill/grill-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu       service.MenuServiceInterface
	Categories service.CategoryServiceInterface
	Hours      service.HoursServiceInterface
	Settings   service.SettingsServiceInterface
	Contacts   service.ContactServiceInterface
	Admins     service.AdminServiceInterface
	Auth       service.AuthServiceInterface
	MenuQR     service.QRGenerator

	UploadDir    string
	SessionTTL   time.Duration
	CookieSecure bool
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/public/restaurant", h.getRestaurantInfo).Methods("GET")
	r.HandleFunc("/api/public/menu", h.getPublicMenu).Methods("GET")
	r.HandleFunc("/api/public/menu/featured", h.getFeaturedMenu).Methods("GET")
	r.HandleFunc("/api/public/menu/qrcode", h.getMenuQRCode).Methods("GET")
	r.HandleFunc("/api/public/menu/category/{category}", h.getMenuByCategory).Methods("GET")
	r.HandleFunc("/api/public/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/public/hours", h.getHours).Methods("GET")
	r.HandleFunc("/api/public/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")

	r.HandleFunc("/api/admin/login", h.login).Methods("POST")
	r.HandleFunc("/api/admin/logout", h.logout).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.requireAdmin)

	admin.HandleFunc("/menu", h.getMenuItems).Methods("GET")
	admin.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	admin.HandleFunc("/menu/category/{category}", h.getMenuByCategory).Methods("GET")
	admin.HandleFunc("/menu/{id:[0-9]+}", h.getMenuItem).Methods("GET")
	admin.HandleFunc("/menu/{id:[0-9]+}", h.updateMenuItem).Methods("PUT")
	admin.HandleFunc("/menu/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")

	admin.HandleFunc("/categories", h.getCategories).Methods("GET")
	admin.HandleFunc("/categories", h.createCategory).Methods("POST")
	admin.HandleFunc("/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")

	admin.HandleFunc("/hours", h.getHours).Methods("GET")
	admin.HandleFunc("/hours", h.saveAllHours).Methods("PUT")
	admin.HandleFunc("/hours/{id:[0-9]+}", h.updateHours).Methods("PUT")

	admin.HandleFunc("/settings", h.getSettings).Methods("GET")
	admin.HandleFunc("/settings", h.updateSettings).Methods("PUT")
	admin.HandleFunc("/settings/hero-image", h.updateSettings).Methods("PUT")
	admin.HandleFunc("/settings/hero-image/upload", h.uploadHeroImage).Methods("POST")

	admin.HandleFunc("/contacts", h.getContacts).Methods("GET")
	admin.HandleFunc("/contacts/summary", h.getContactSummary).Methods("GET")
	admin.HandleFunc("/contacts/{id:[0-9]+}", h.deleteContact).Methods("DELETE")

	admin.HandleFunc("/users", h.getAdmins).Methods("GET")
	admin.HandleFunc("/users", h.createAdmin).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}", h.deleteAdmin).Methods("DELETE")

	if h.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "grill-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to Mike's Grill API"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// writeServiceError maps service sentinels onto status codes; anything else is a 500.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, notFoundMessage, http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrEmptyUpload),
		errors.Is(err, service.ErrUnsupportedImage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrSelfDelete):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
