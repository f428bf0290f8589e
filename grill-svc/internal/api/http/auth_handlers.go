package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mikes-grill/grill-svc/internal/domain"
	"mikes-grill/grill-svc/internal/service"
)

const SessionCookieName = "GRILL_SESSION"

type contextKey string

const sessionKey contextKey = "session"

func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey).(*domain.Session)
	return session
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		session, err := h.Auth.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidCredentials) {
				log.Printf("ERROR: Failed to load session: %v", err)
			}
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	session, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrLoginThrottled):
			writeJSONError(w, http.StatusTooManyRequests, "Too many failed attempts, try again shortly")
		default:
			log.Printf("ERROR: Login failed for %q: %v", req.Username, err)
			writeJSONError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": session.Username,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.Auth.Logout(r.Context(), cookie.Value); err != nil {
			log.Printf("ERROR: Failed to delete session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getAdmins(w http.ResponseWriter, r *http.Request) {
	users, err := h.Admins.List()
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Admins.Create(req)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.Admins.Delete(pathID(r), SessionFromContext(r.Context())); err != nil {
		writeServiceError(w, err, "Admin user not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}
