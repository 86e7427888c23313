package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session holds the authentication state of one client: the bearer token and
// the signed-in user. When a file path is given, state survives restarts the
// way the panel's persisted storage did.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *User
}

type sessionFile struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NewSession returns an anonymous session. path may be empty for a purely
// in-memory session.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// Load restores a previously persisted session. A missing file is not an
// error; the session simply stays anonymous.
func (s *Session) Load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = f.Token
	s.user = f.User
	s.mu.Unlock()
	return nil
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the bearer token, or "" when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil when anonymous.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) set(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return s.persist()
}

func (s *Session) clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// persist writes the session file. Caller holds the lock.
func (s *Session) persist() error {
	if s.path == "" {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.Marshal(sessionFile{Token: s.token, User: s.user})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
