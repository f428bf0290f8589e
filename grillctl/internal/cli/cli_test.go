package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/session"
	"mikes-grill/grillctl/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	server      *httptest.Server
	sessionFile string
	requests    atomic.Int32
	deletes     atomic.Int32
	savedHours  atomic.Value
}

func newHarness(t *testing.T) *harness {
	h := &harness{sessionFile: filepath.Join(t.TempDir(), "session.json")}
	drinks := &domain.MenuCategory{ID: 2, Name: "Drinks"}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/public/menu", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.MenuItem{
			{ID: 1, Name: "Soda", Price: 1.5, Category: drinks},
			{ID: 2, Name: "Large Shake", Price: 5, Category: drinks},
		})
	})
	mux.HandleFunc("/api/public/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.MenuCategory{*drinks})
	})
	mux.HandleFunc("/api/admin/contacts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/api/admin/hours", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var rows []domain.RestaurantHours
			_ = json.NewDecoder(r.Body).Decode(&rows)
			h.savedHours.Store(rows)
			_ = json.NewEncoder(w).Encode(rows)
			return
		}
		_ = json.NewEncoder(w).Encode([]domain.RestaurantHours{
			{ID: 1, DayOfWeek: "Monday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 1},
			{ID: 7, DayOfWeek: "Sunday", Closed: true, SortOrder: 7},
		})
	})
	mux.HandleFunc("/api/admin/contacts/3", func(w http.ResponseWriter, r *http.Request) {
		h.deletes.Add(1)
		_, _ = w.Write([]byte(`{"message":"Deleted"}`))
	})
	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(h.server.Close)
	return h
}

func (h *harness) login(t *testing.T) {
	require.NoError(t, session.NewStore(h.sessionFile).Save(session.Session{Username: "mike", Token: "tok"}))
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--server", h.server.URL, "--session-file", h.sessionFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAdminCommandsRequireLogin(t *testing.T) {
	h := newHarness(t)

	tests := [][]string{
		{"menu", "list"},
		{"hours", "close", "Monday"},
		{"contacts", "delete", "3"},
		{"users", "add", "--username", "sam", "--password", "password123"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := h.run("", args...)
			assert.ErrorIs(t, err, session.ErrNotLoggedIn)
			assert.Equal(t, notLoggedInHint, describe(err))
		})
	}
	assert.Equal(t, int32(0), h.requests.Load())
}

func TestPublicMenu(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "public", "menu", "--category", "drinks")

	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Large Shake"), strings.Index(out, "Soda"))
	assert.Contains(t, out, "$1.50")

	_, err = h.run("", "public", "menu", "--category", "Pizza")
	assert.ErrorContains(t, err, "unknown category")
}

func TestDeleteConfirmation(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run("n\n", "contacts", "delete", "3")
	assert.ErrorIs(t, err, views.ErrCancelled)
	assert.Contains(t, out, "Delete this message? [y/N]")
	assert.Equal(t, int32(0), h.deletes.Load())

	out, err = h.run("", "--yes", "contacts", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Message deleted.")
	assert.Equal(t, int32(1), h.deletes.Load())
}

func TestUsersAddShortPassword(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	_, err := h.run("", "users", "add", "--username", "sam", "--password", "short")

	assert.Equal(t, views.MsgPasswordTooShort, err)
	assert.Equal(t, int32(0), h.requests.Load())
}

func TestInvalidID(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	_, err := h.run("", "menu", "delete", "abc")

	assert.ErrorContains(t, err, `invalid id "abc"`)
	assert.Equal(t, int32(0), h.requests.Load())
}

func TestContactSendValidatesLocally(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "contact", "send", "--name", "Ann", "--email", "nope", "--message", "hi")

	assert.Equal(t, views.MsgContactEmailInvalid, err)
	assert.Equal(t, int32(0), h.requests.Load())
}

func TestHoursCloseOnlyCloses(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMonday bool
		wantSunday bool
	}{
		{"close open day", []string{"hours", "close", "monday"}, true, true},
		{"close closed day stays closed", []string{"hours", "close", "Sunday"}, false, true},
		{"toggle closed day opens it", []string{"hours", "toggle", "Sunday"}, false, false},
		{"set reopens closed day", []string{"hours", "set", "Sunday", "9:00 AM", "2:00 PM"}, false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			h := newHarness(t)
			h.login(t)

			_, err := h.run("", testCase.args...)
			require.NoError(t, err)

			saved, ok := h.savedHours.Load().([]domain.RestaurantHours)
			require.True(t, ok)
			require.Len(t, saved, 2)
			assert.Equal(t, testCase.wantMonday, saved[0].Closed)
			assert.Equal(t, testCase.wantSunday, saved[1].Closed)
		})
	}
}
