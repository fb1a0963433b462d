package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tapacademy.com/attendance/attendance/model"
)

const DefaultServer = "http://localhost:8080"

// Session is the CLI's persisted login. It is loaded once at start,
// passed to each command and saved once at exit.
type Session struct {
	Server string          `json:"server"`
	Token  string          `json:"token,omitempty"`
	User   *model.UserView `json:"user,omitempty"`
}

func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

func (s *Session) Clear() {
	s.Token = ""
	s.User = nil
}

// Client returns an API client bound to the session's server and token.
func (s *Session) Client() *Client {
	return New(s.Server, s.Token)
}

// LoadSession reads path. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	s := &Session{Server: DefaultServer}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}
	if s.Server == "" {
		s.Server = DefaultServer
	}
	return s, nil
}

// Save writes the session with owner-only permissions.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
