package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/session"
)

var ErrNoSessionCookie = errors.New("login response carried no session cookie")

func (c *Client) Menu() *Resource[domain.MenuItem] {
	return NewResource[domain.MenuItem](c, "/api/admin/menu", true)
}

func (c *Client) Categories() *Resource[domain.MenuCategory] {
	return NewResource[domain.MenuCategory](c, "/api/admin/categories", true)
}

func (c *Client) Hours() *Resource[domain.RestaurantHours] {
	return NewResource[domain.RestaurantHours](c, "/api/admin/hours", true)
}

func (c *Client) Contacts() *Resource[domain.ContactMessage] {
	return NewResource[domain.ContactMessage](c, "/api/admin/contacts", true)
}

func (c *Client) Users() *Resource[domain.AdminUser] {
	return NewResource[domain.AdminUser](c, "/api/admin/users", true)
}

func (c *Client) PublicMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return NewResource[domain.MenuItem](c, "/api/public/menu", false).List(ctx)
}

func (c *Client) FeaturedMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return NewResource[domain.MenuItem](c, "/api/public/menu/featured", false).List(ctx)
}

func (c *Client) PublicCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	return NewResource[domain.MenuCategory](c, "/api/public/categories", false).List(ctx)
}

func (c *Client) PublicHours(ctx context.Context) ([]domain.RestaurantHours, error) {
	return NewResource[domain.RestaurantHours](c, "/api/public/hours", false).List(ctx)
}

func (c *Client) PublicSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	if err := c.doJSON(ctx, http.MethodGet, "/api/public/settings", nil, &settings, false); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) AdminSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/settings", nil, &settings, true); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveHours replaces every row in one call and returns the stored set.
func (c *Client) SaveHours(ctx context.Context, rows []domain.RestaurantHours) ([]domain.RestaurantHours, error) {
	var out []domain.RestaurantHours
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/hours", rows, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// SetHeroImageURL points the hero image at url; a blank url clears it.
func (c *Client) SetHeroImageURL(ctx context.Context, url string) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	body := map[string]string{"heroImageUrl": url}
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/settings/hero-image", body, &settings, true); err != nil {
		return nil, err
	}
	return &settings, nil
}

func imageContentType(filename string, content *bufio.Reader) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); t != "" {
		return strings.Split(t, ";")[0]
	}
	head, _ := content.Peek(512)
	return http.DetectContentType(head)
}

func (c *Client) UploadHeroImage(ctx context.Context, filename string, content io.Reader) (*domain.SiteSettings, error) {
	buffered := bufio.NewReader(content)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filename)))
	header.Set("Content-Type", imageContentType(filename, buffered))
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, buffered); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/settings/hero-image/upload", body, true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var settings domain.SiteSettings
	if _, err := c.send(req, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	return c.doJSON(ctx, http.MethodPost, "/api/contact", msg, nil, false)
}

func (c *Client) ContactSummary(ctx context.Context) (*domain.ContactSummary, error) {
	var summary domain.ContactSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/contacts/summary", nil, &summary, true); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Login exchanges credentials for the server's session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (*session.Session, error) {
	payload, err := json.Marshal(domain.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/login", bytes.NewReader(payload), false)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out domain.LoginResponse
	resp, err := c.send(req, &out)
	if err != nil {
		return nil, err
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			name := out.Username
			if name == "" {
				name = username
			}
			return &session.Session{Username: name, Token: cookie.Value}, nil
		}
	}
	return nil, ErrNoSessionCookie
}

// Logout ends the server session if one is stored; it never requires one.
func (c *Client) Logout(ctx context.Context) error {
	s, err := session.Guard(c.Sessions)
	if err != nil {
		return nil
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/logout", nil, false)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: s.Token})
	_, err = c.send(req, nil)
	return err
}
