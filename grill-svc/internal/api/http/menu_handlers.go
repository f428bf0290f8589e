package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"mikes-grill/grill-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getPublicMenu(w http.ResponseWriter, r *http.Request) {
	h.getMenuItems(w, r)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getFeaturedMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListFeatured()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListByCategory(mux.Vars(r)["category"])
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(pathID(r))
	if err != nil {
		writeServiceError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = 0
	if err := h.Menu.Create(&item); err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = pathID(r)
	if err := h.Menu.Update(&item); err != nil {
		writeServiceError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(pathID(r)); err != nil {
		writeServiceError(w, err, "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	if h.MenuQR == nil {
		http.Error(w, "QR code not available", http.StatusNotFound)
		return
	}
	png, err := h.MenuQR.Generate()
	if err != nil {
		log.Printf("ERROR: Failed to generate menu QR code: %v", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = 0
	if err := h.Categories.Create(&category); err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var incoming domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category, err := h.Categories.Update(pathID(r), &incoming)
	if err != nil {
		writeServiceError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}
