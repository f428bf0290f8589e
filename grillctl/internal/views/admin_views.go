package views

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/session"
)

type ContactInbox struct {
	client  *api.Client
	confirm Confirmer

	Messages []domain.ContactMessage
}

func NewContactInbox(client *api.Client, confirm Confirmer) *ContactInbox {
	return &ContactInbox{client: client, confirm: confirm}
}

func (b *ContactInbox) Load(ctx context.Context) error {
	messages, err := b.client.Contacts().List(ctx)
	if err != nil {
		return fail(err, MsgContactsLoad)
	}
	b.Messages = messages
	return nil
}

// Filtered matches term against name, email and message, ignoring case.
func (b *ContactInbox) Filtered(term string) []domain.ContactMessage {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return b.Messages
	}
	out := make([]domain.ContactMessage, 0, len(b.Messages))
	for _, msg := range b.Messages {
		if strings.Contains(strings.ToLower(msg.Name), needle) ||
			strings.Contains(strings.ToLower(msg.Email), needle) ||
			strings.Contains(strings.ToLower(msg.Message), needle) {
			out = append(out, msg)
		}
	}
	return out
}

func (b *ContactInbox) Delete(ctx context.Context, id int) error {
	if !b.confirm.Confirm("Delete this message?") {
		return ErrCancelled
	}
	if err := b.client.Contacts().Delete(ctx, id); err != nil {
		return fail(err, MsgContactDelete)
	}
	return b.Load(ctx)
}

func (b *ContactInbox) Summary(ctx context.Context) (*domain.ContactSummary, error) {
	summary, err := b.client.ContactSummary(ctx)
	if err != nil {
		return nil, fail(err, MsgSummaryLoad)
	}
	return summary, nil
}

type UserManager struct {
	client   *api.Client
	sessions session.Loader
	confirm  Confirmer

	Users []domain.AdminUser
}

func NewUserManager(client *api.Client, sessions session.Loader, confirm Confirmer) *UserManager {
	return &UserManager{client: client, sessions: sessions, confirm: confirm}
}

func (m *UserManager) Load(ctx context.Context) error {
	users, err := m.client.Users().List(ctx)
	if err != nil {
		return fail(err, MsgUsersLoad)
	}
	m.Users = users
	return nil
}

// Create checks the password length before anything is sent.
func (m *UserManager) Create(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return MsgNameRequired
	}
	if len(password) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	_, err := m.client.Users().Create(ctx, domain.CreateAdminRequest{Username: username, Password: password})
	if api.IsStatus(err, http.StatusConflict) {
		log.Printf("ERROR: %s: %v", MsgUsernameTaken, err)
		return MsgUsernameTaken
	}
	if err != nil {
		return fail(err, MsgUserCreate)
	}
	return m.Load(ctx)
}

// Delete refuses, without a request, to remove the logged-in admin's own account.
func (m *UserManager) Delete(ctx context.Context, id int) error {
	current, err := session.Guard(m.sessions)
	if err != nil {
		return err
	}
	for _, u := range m.Users {
		if u.ID == id && strings.EqualFold(u.Username, current.Username) {
			return MsgSelfDelete
		}
	}
	if !m.confirm.Confirm("Delete this user?") {
		return ErrCancelled
	}
	if err := m.client.Users().Delete(ctx, id); err != nil {
		if api.IsStatus(err, http.StatusConflict) {
			return MsgSelfDelete
		}
		return fail(err, MsgUserDelete)
	}
	return m.Load(ctx)
}

type SessionStore interface {
	session.Loader
	Save(s session.Session) error
	Clear() error
}

type LoginView struct {
	client   *api.Client
	sessions SessionStore
}

func NewLoginView(client *api.Client, sessions SessionStore) *LoginView {
	return &LoginView{client: client, sessions: sessions}
}

// Login stores the username and server session token on success.
func (v *LoginView) Login(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, MsgCredentialsRequired
	}

	s, err := v.client.Login(ctx, username, password)
	if err != nil {
		log.Printf("ERROR: login for %q: %v", username, err)
		switch {
		case api.IsStatus(err, http.StatusUnauthorized):
			return nil, MsgInvalidCredentials
		case api.IsStatus(err, http.StatusTooManyRequests):
			return nil, MsgTooManyAttempts
		default:
			return nil, MsgLoginFailed
		}
	}

	if err := v.sessions.Save(*s); err != nil {
		return nil, fail(err, MsgLoginFailed)
	}
	return s, nil
}

// Logout ends the server session best effort and always clears the local one.
func (v *LoginView) Logout(ctx context.Context) error {
	if err := v.client.Logout(ctx); err != nil {
		log.Printf("ERROR: server logout: %v", err)
	}
	if err := v.sessions.Clear(); err != nil {
		log.Printf("ERROR: clear session: %v", err)
		return errors.New("could not remove the stored session")
	}
	return nil
}
