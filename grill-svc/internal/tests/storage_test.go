package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"mikes-grill/grill-svc/internal/domain"
	"mikes-grill/grill-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMock(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func menuRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "featured", "c_id", "c_name", "c_sort"})
}

func TestPostgres_ListMenuItems(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items m")).
		WillReturnRows(menuRows().
			AddRow(1, "Small Shake", "", 3.5, "", false, 2, "Drinks", 2).
			AddRow(2, "Patty Melt", "Rye, onions", 9.25, "/uploads/melt.png", true, 4, "Sandwiches", 4))

	items, err := repo.ListMenuItems()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Drinks", items[0].Category.Name)
	assert.Equal(t, 4, *items[1].Category.SortOrder)
	assert.True(t, items[1].Featured)
}

func TestPostgres_ListMenuItemsByCategory(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(c.name) = LOWER($1)")).
		WithArgs("drinks").
		WillReturnRows(menuRows().AddRow(1, "Soda", "", 1.0, "", false, 2, "Drinks", 2))

	items, err := repo.ListMenuItemsByCategory("drinks")

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPostgres_GetMenuItemMissing(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE m.id = $1")).
		WithArgs(77).
		WillReturnError(sql.ErrNoRows)

	item, err := repo.GetMenuItem(77)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, item)
}

func TestPostgres_CreateMenuItem(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_items")).
		WithArgs("Malt", "", 4.25, "", 2, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	item := &domain.MenuItem{Name: "Malt", Price: 4.25, Category: drinks()}
	require.NoError(t, repo.CreateMenuItem(item))
	assert.Equal(t, 12, item.ID)
}

func TestPostgres_UpdateMenuItemMissing(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE menu_items")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.UpdateMenuItem(&domain.MenuItem{ID: 5, Name: "Malt", Category: drinks()})

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgres_DeleteMenuItem(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu_items WHERE id=$1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteMenuItem(3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestPostgres_Categories(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sort_order, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort_order"}).
			AddRow(1, "Breakfast", 1).
			AddRow(2, "Drinks", 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(sort_order), 0) FROM menu_categories")).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(9))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_categories")).
		WithArgs("Specials", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	categories, err := repo.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Drinks"}, []string{categories[0].Name, categories[1].Name})

	max, err := repo.MaxCategorySortOrder()
	require.NoError(t, err)
	assert.Equal(t, 9, max)

	order := max + 1
	category := &domain.MenuCategory{Name: "Specials", SortOrder: &order}
	require.NoError(t, repo.CreateCategory(category))
	assert.Equal(t, 10, category.ID)
}

func TestPostgres_UpdateHours(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE restaurant_hours")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateHours(&domain.RestaurantHours{ID: 40, Closed: true})

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestPostgres_UpdateHoursBatch(t *testing.T) {
	rows := []domain.RestaurantHours{
		{ID: 1, OpenTime: "10:00 AM", CloseTime: "9:00 PM"},
		{ID: 7, Closed: true},
	}

	t.Run("commits all rows", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE restaurant_hours")).
			WithArgs("10:00 AM", "9:00 PM", false, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE restaurant_hours")).
			WithArgs("", "", true, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateHoursBatch(rows))
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		repo, mock := newSQLMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE restaurant_hours")).
			WithArgs("10:00 AM", "9:00 PM", false, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE restaurant_hours")).
			WithArgs("", "", true, 7).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.UpdateHoursBatch(rows)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.ErrorContains(t, err, "update hours 7")
	})
}

func TestPostgres_Settings(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hero_image_url"}).AddRow(1, nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE site_settings SET hero_image_url=$1 WHERE id=$2")).
		WithArgs("/uploads/hero-1.png", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	settings, err := repo.GetSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.HeroImageURL)

	require.NoError(t, repo.UpdateHeroImage(1, strPtr("/uploads/hero-1.png")))
}

func TestPostgres_Contacts(t *testing.T) {
	repo, mock := newSQLMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WithArgs("Ann", "ann@example.com", "Hi").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
			AddRow(4, "Ann", "ann@example.com", "Hi", now).
			AddRow(3, "Bob", "bob@example.com", "Hello", now.Add(-time.Hour)))

	msg := &domain.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "Hi"}
	require.NoError(t, repo.CreateContact(msg))
	assert.Equal(t, 4, msg.ID)
	assert.Equal(t, now, msg.CreatedAt)

	messages, err := repo.ListContacts()
	require.NoError(t, err)
	assert.Equal(t, 4, messages[0].ID)
	assert.Equal(t, 3, messages[1].ID)
}

func TestPostgres_Admins(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("mike").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "mike", "$2a$hash"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admin_users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "mike", "$2a$hash"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(2).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetAdminByUsername("mike")
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", user.PasswordHash)

	count, err := repo.CountAdmins()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	user, err = repo.GetAdmin(1)
	require.NoError(t, err)
	assert.Equal(t, "mike", user.Username)

	_, err = repo.GetAdmin(2)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgres_EnsureSchema(t *testing.T) {
	repo, mock := newSQLMock(t)
	for _, table := range []string{"menu_categories", "menu_items", "restaurant_hours", "site_settings", "contact_messages", "admin_users"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema())
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	store := storage.NewRedisSessionStore(client, time.Hour)

	require.NoError(t, store.CreateSession(ctx, &domain.Session{Token: "abc", UserID: 1, Username: "mike"}))
	assert.True(t, mr.Exists("session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))

	session, err := store.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "mike", session.Username)
	assert.Equal(t, "abc", session.Token)

	require.NoError(t, store.DeleteSession(ctx, "abc"))
	session, err = store.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	store := storage.NewRedisSessionStore(client, time.Minute)
	require.NoError(t, store.CreateSession(ctx, &domain.Session{Token: "abc", UserID: 1}))

	mr.FastForward(2 * time.Minute)

	session, err := store.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCooldownForFailures(t *testing.T) {
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{0, 0},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{12, 30 * time.Second},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, storage.CooldownForFailures(testCase.failures), "failures=%d", testCase.failures)
	}
}

func TestRedisLoginThrottle(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	throttle := storage.NewRedisLoginThrottle(client)

	wait, err := throttle.WaitSeconds(ctx, "mike")
	require.NoError(t, err)
	assert.Equal(t, 0, wait)

	require.NoError(t, throttle.RecordFailure(ctx, "mike"))
	require.NoError(t, throttle.RecordFailure(ctx, "mike"))
	wait, err = throttle.WaitSeconds(ctx, "mike")
	require.NoError(t, err)
	assert.Equal(t, 4, wait)

	mr.FastForward(5 * time.Second)
	wait, err = throttle.WaitSeconds(ctx, "mike")
	require.NoError(t, err)
	assert.Equal(t, 0, wait)

	require.NoError(t, throttle.Reset(ctx, "mike"))
	assert.False(t, mr.Exists("login:fail:mike"))
}

func TestRedisContactCounter(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	counter := storage.NewRedisContactCounter(client)

	summary, err := counter.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactSummary{}, summary)

	require.NoError(t, mr.Set(storage.ContactsUnreadKey, "3"))
	require.NoError(t, mr.Set(storage.DailyContactsKey(time.Now()), "5"))

	summary, err = counter.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactSummary{Unread: 3, Today: 5}, summary)

	require.NoError(t, counter.ResetUnread(ctx))
	assert.False(t, mr.Exists(storage.ContactsUnreadKey))
}

func TestDailyContactsKey(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "contacts:daily:2024-03-09", storage.DailyContactsKey(day))
}

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)

	err := publisher.PublishContact(context.Background(), domain.ContactEvent{
		Type: "contact_submitted", ContactID: 21, Name: "Ann", Email: "ann@example.com", Message: "Hi",
	})

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "21", string(writer.messages[0].Key))
	var event domain.ContactEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "ann@example.com", event.Email)
}

func TestDiskImageStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := storage.NewDiskImageStore(dir)
	require.NoError(t, err)

	url, err := store.Save("../../hero-1.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/hero-1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "hero-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}
