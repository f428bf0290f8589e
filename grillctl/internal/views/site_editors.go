package views

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/domain"
)

type CategoryEditor struct {
	client *api.Client

	Categories []domain.MenuCategory
}

func NewCategoryEditor(client *api.Client) *CategoryEditor {
	return &CategoryEditor{client: client}
}

func (e *CategoryEditor) Load(ctx context.Context) error {
	categories, err := e.client.Categories().List(ctx)
	if err != nil {
		return fail(err, MsgCategoriesLoad)
	}
	e.Categories = categories
	return nil
}

func (e *CategoryEditor) Rename(ctx context.Context, id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return MsgNameRequired
	}
	if _, err := e.client.Categories().Update(ctx, id, domain.MenuCategory{ID: id, Name: name}); err != nil {
		return fail(err, MsgCategorySave)
	}
	return e.Load(ctx)
}

// Add appends a category; the server places it after the current last one.
func (e *CategoryEditor) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return MsgNameRequired
	}
	if _, err := e.client.Categories().Create(ctx, domain.MenuCategory{Name: name}); err != nil {
		return fail(err, MsgCategorySave)
	}
	return e.Load(ctx)
}

type HoursEditor struct {
	client *api.Client

	Days []domain.RestaurantHours
}

func NewHoursEditor(client *api.Client) *HoursEditor {
	return &HoursEditor{client: client}
}

func (e *HoursEditor) Load(ctx context.Context) error {
	days, err := e.client.Hours().List(ctx)
	if err != nil {
		return fail(err, MsgHoursLoad)
	}
	e.Days = days
	return nil
}

func (e *HoursEditor) day(id int) (*domain.RestaurantHours, error) {
	for i := range e.Days {
		if e.Days[i].ID == id {
			return &e.Days[i], nil
		}
	}
	return nil, MsgUnknownDay
}

// DayID finds a loaded row by day name, ignoring case.
func (e *HoursEditor) DayID(name string) (int, bool) {
	for _, d := range e.Days {
		if strings.EqualFold(d.DayOfWeek, strings.TrimSpace(name)) {
			return d.ID, true
		}
	}
	return 0, false
}

func (e *HoursEditor) SetOpen(id int, value string) error {
	d, err := e.day(id)
	if err != nil {
		return err
	}
	d.OpenTime = value
	return nil
}

func (e *HoursEditor) SetClose(id int, value string) error {
	d, err := e.day(id)
	if err != nil {
		return err
	}
	d.CloseTime = value
	return nil
}

// ToggleClosed flips the closed flag and clears both times.
func (e *HoursEditor) ToggleClosed(id int) error {
	d, err := e.day(id)
	if err != nil {
		return err
	}
	d.Closed = !d.Closed
	d.OpenTime = ""
	d.CloseTime = ""
	return nil
}

// SetClosed marks a day closed or open. Closing clears both times; an
// already closed day is left as it is.
func (e *HoursEditor) SetClosed(id int, closed bool) error {
	d, err := e.day(id)
	if err != nil {
		return err
	}
	if d.Closed == closed {
		return nil
	}
	d.Closed = closed
	d.OpenTime = ""
	d.CloseTime = ""
	return nil
}

// Save sends every row in one request and adopts the server's result.
func (e *HoursEditor) Save(ctx context.Context) error {
	days, err := e.client.SaveHours(ctx, e.Days)
	if err != nil {
		return fail(err, MsgHoursSave)
	}
	e.Days = days
	return nil
}

// HeroImageEditor keeps at most one chosen file open as the local preview.
type HeroImageEditor struct {
	client *api.Client

	// OpenFile opens a chosen image; defaults to os.Open.
	OpenFile func(path string) (io.ReadCloser, error)

	Settings    *domain.SiteSettings
	previewName string
	preview     io.ReadCloser
}

func NewHeroImageEditor(client *api.Client) *HeroImageEditor {
	return &HeroImageEditor{
		client: client,
		OpenFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

func (e *HeroImageEditor) Load(ctx context.Context) error {
	settings, err := e.client.AdminSettings(ctx)
	if err != nil {
		return fail(err, MsgSettingsLoad)
	}
	e.Settings = settings
	return nil
}

// SetURL stores url as the hero image; a blank url removes it.
func (e *HeroImageEditor) SetURL(ctx context.Context, url string) error {
	settings, err := e.client.SetHeroImageURL(ctx, strings.TrimSpace(url))
	if err != nil {
		return fail(err, MsgHeroSave)
	}
	e.Settings = settings
	return nil
}

// Choose opens path as the pending upload, releasing any earlier choice.
func (e *HeroImageEditor) Choose(path string) error {
	file, err := e.OpenFile(path)
	if err != nil {
		return fail(err, MsgImageOpen)
	}
	e.release()
	e.preview = file
	e.previewName = filepath.Base(path)
	return nil
}

func (e *HeroImageEditor) PreviewName() string {
	return e.previewName
}

// Upload sends the chosen file. The preview is released once the server has it;
// on failure it stays open so the upload can be tried again.
func (e *HeroImageEditor) Upload(ctx context.Context) error {
	if e.preview == nil {
		return MsgNoImageChosen
	}
	if seeker, ok := e.preview.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return fail(err, MsgHeroSave)
		}
	}
	settings, err := e.client.UploadHeroImage(ctx, e.previewName, e.preview)
	if err != nil {
		return fail(err, MsgHeroSave)
	}
	e.Settings = settings
	e.release()
	return nil
}

func (e *HeroImageEditor) Close() {
	e.release()
}

func (e *HeroImageEditor) release() {
	if e.preview != nil {
		e.preview.Close()
	}
	e.preview = nil
	e.previewName = ""
}
