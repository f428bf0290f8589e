package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"mikes-grill/grill-svc/internal/domain"
	"mikes-grill/grill-svc/internal/service"
)

const (
	maxUploadSize = 10 << 20
	// multipartOverhead leaves room for boundaries and part headers so a
	// file of exactly maxUploadSize still fits in the request body.
	multipartOverhead = 1 << 20
)

func (h *Handler) getHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.Hours.List()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) saveAllHours(w http.ResponseWriter, r *http.Request) {
	var incoming []domain.RestaurantHours
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hours, err := h.Hours.SaveAll(incoming)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) updateHours(w http.ResponseWriter, r *http.Request) {
	var incoming domain.RestaurantHours
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hours, err := h.Hours.Update(pathID(r), &incoming)
	if err != nil {
		writeServiceError(w, err, "Hours not found")
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var incoming domain.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	settings, err := h.Settings.UpdateHeroImage(incoming.HeroImageURL)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) uploadHeroImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
			http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeServiceError(w, service.ErrEmptyUpload, "")
		return
	}
	if header.Size > maxUploadSize {
		http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}

	settings, err := h.Settings.UploadHeroImage(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	msg.ID = 0
	if err := h.Contacts.Submit(r.Context(), &msg); err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) getContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Contacts.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) getContactSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Contacts.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.Contacts.Delete(pathID(r)); err != nil {
		writeServiceError(w, err, "Message not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
