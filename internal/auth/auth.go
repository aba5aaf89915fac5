// Package auth guards the ledger behind a single configured account. The
// password is checked against a bcrypt hash, and a successful login is
// remembered in a session file kept apart from the business data.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"electroledger/internal/logger"
)

var (
	// ErrInvalidCredentials is returned for a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotAuthenticated is returned when no valid session exists.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoCredentials is returned when no password hash is configured.
	ErrNoCredentials = errors.New("no password hash configured")
)

// Credentials is the one account allowed to use the ledger.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Session is what a login leaves behind. It never holds the password.
type Session struct {
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// Manager logs the account in and out.
type Manager struct {
	creds Credentials
	path  string
	now   func() time.Time
	log   zerolog.Logger
}

// NewManager returns a manager storing its session at sessionFile.
func NewManager(creds Credentials, sessionFile string) *Manager {
	return &Manager{
		creds: creds,
		path:  sessionFile,
		now:   time.Now,
		log:   logger.WithComponent("auth"),
	}
}

// Login checks username and password and records a session.
func (m *Manager) Login(username, password string) (Session, error) {
	const op = "auth.Login"

	if m.creds.PasswordHash == "" {
		return Session{}, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.creds.Username)) == 1
	// bcrypt runs for every attempt, including unknown usernames.
	passErr := bcrypt.CompareHashAndPassword([]byte(m.creds.PasswordHash), []byte(password))
	if passErr != nil && !errors.Is(passErr, bcrypt.ErrMismatchedHashAndPassword) {
		return Session{}, fmt.Errorf("%s: stored hash: %w", op, passErr)
	}
	if !userOK || passErr != nil {
		m.log.Warn().Str("username", username).Msg("Login rejected")
		return Session{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	s := Session{Username: m.creds.Username, Authenticated: true, IssuedAt: m.now().UTC()}
	if err := m.write(s); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}
	m.log.Info().Str("username", s.Username).Msg("Logged in")
	return s, nil
}

// Current returns the stored session, if any.
func (m *Manager) Current() (Session, bool, error) {
	const op = "auth.Current"

	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("%s: %w", op, err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		m.log.Warn().Err(err).Str("path", m.path).Msg("Ignoring unreadable session file")
		return Session{}, false, nil
	}
	return s, true, nil
}

// Require returns the session if it is authenticated for the configured
// account.
func (m *Manager) Require() (Session, error) {
	s, ok, err := m.Current()
	if err != nil {
		return Session{}, err
	}
	if !ok || !s.Authenticated || s.Username != m.creds.Username {
		return Session{}, ErrNotAuthenticated
	}
	return s, nil
}

// Logout removes the session. Logging out twice is not an error.
func (m *Manager) Logout() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	m.log.Info().Msg("Logged out")
	return nil
}

func (m *Manager) write(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o600)
}

// HashPassword returns the bcrypt hash of password. A cost of zero uses
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(hash), nil
}
