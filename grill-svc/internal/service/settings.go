package service

import (
	"bytes"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"

	"mikes-grill/grill-svc/internal/domain"

	"github.com/google/uuid"
)

// imageExtensions maps the accepted image types to the extension a stored
// upload gets. The client's filename never picks the extension.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const sniffLen = 512

type SettingsService struct {
	repo   SettingsRepository
	images ImageStore
}

func NewSettingsService(repo SettingsRepository, images ImageStore) *SettingsService {
	return &SettingsService{repo: repo, images: images}
}

// Get returns the singleton settings row, creating an empty one on first use.
func (s *SettingsService) Get() (*domain.SiteSettings, error) {
	settings, err := s.repo.GetSettings()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	settings = &domain.SiteSettings{}
	if err := s.repo.CreateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) UpdateHeroImage(heroImageURL *string) (*domain.SiteSettings, error) {
	if heroImageURL != nil {
		trimmed := strings.TrimSpace(*heroImageURL)
		if trimmed == "" {
			heroImageURL = nil
		} else {
			heroImageURL = &trimmed
		}
	}
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateHeroImage(settings.ID, heroImageURL); err != nil {
		return nil, err
	}
	settings.HeroImageURL = heroImageURL
	return settings, nil
}

// UploadHeroImage stores an uploaded image and points the hero at it. The
// declared type must be an image type and the content itself must sniff as
// one; the stored extension follows the sniffed type.
func (s *SettingsService) UploadHeroImage(filename, contentType string, content io.Reader) (*domain.SiteSettings, error) {
	if content == nil {
		return nil, ErrEmptyUpload
	}
	if _, ok := imageExtensions[contentType]; !ok {
		return nil, ErrUnsupportedImage
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if n == 0 {
		return nil, ErrEmptyUpload
	}
	head = head[:n]
	ext, ok := imageExtensions[http.DetectContentType(head)]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	name := "hero-" + uuid.NewString() + ext
	url, err := s.images.Save(name, io.MultiReader(bytes.NewReader(head), content))
	if err != nil {
		return nil, err
	}
	return s.UpdateHeroImage(&url)
}

var _ SettingsServiceInterface = (*SettingsService)(nil)
