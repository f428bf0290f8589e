package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Session is the only state kept between runs: the admin's username and the
// opaque cookie value the server issued at login. Passwords are never stored.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// DefaultPath is ~/.grillctl/session.json, or ./.grillctl-session.json without a home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".grillctl-session.json"
	}
	return filepath.Join(home, ".grillctl", "session.json")
}

// Load returns nil without error when nothing is stored.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *Store) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0600)
}

func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

type Loader interface {
	Load() (*Session, error)
}

// Guard returns the stored session or ErrNotLoggedIn. An unreadable session
// file counts as logged out.
func Guard(store Loader) (*Session, error) {
	session, err := store.Load()
	if err != nil || session == nil || strings.TrimSpace(session.Username) == "" || session.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return session, nil
}
