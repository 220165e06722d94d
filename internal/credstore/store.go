// Package credstore persists the bearer token and the minimal user profile
// the UI needs between runs. The four fields are written and removed as a
// single group; readers never observe a partial group.
package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/patrickmn/go-cache"
)

const (
	keyToken    = "auth_token"
	keyUserID   = "user_id"
	keyUsername = "username"
	keyEmail    = "email"
)

// AuthData is the credential group saved on login or registration. Token
// presence means "logged in"; the profile fields are only meaningful when the
// token is present.
type AuthData struct {
	Token    string
	UserID   string
	Username string
	Email    string
}

type Store struct {
	mu   sync.Mutex
	c    *cache.Cache
	path string
}

// New opens the store backed by the file at path. A missing file is an empty
// store, not an error. An empty path keeps the store purely in memory, which
// the tests use.
func New(path string) (*Store, error) {
	c := cache.New(cache.NoExpiration, 0)

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
		if err := c.LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return &Store{c: c, path: path}, nil
}

// SaveAuthData writes all four credential fields and persists them in one
// step.
func (s *Store) SaveAuthData(token, userID, username, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.c.Set(keyToken, token, cache.NoExpiration)
	s.c.Set(keyUserID, userID, cache.NoExpiration)
	s.c.Set(keyUsername, username, cache.NoExpiration)
	s.c.Set(keyEmail, email, cache.NoExpiration)

	return s.persist()
}

// ClearAuthData removes all four credential fields together.
func (s *Store) ClearAuthData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.c.Delete(keyToken)
	s.c.Delete(keyUserID)
	s.c.Delete(keyUsername)
	s.c.Delete(keyEmail)

	return s.persist()
}

// Token returns the stored bearer token, or the empty string when none is
// saved. Callers impose their own timeout through ctx and treat expiry as
// "not logged in".
func (s *Store) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(keyToken), nil
}

// Load returns the whole credential group.
func (s *Store) Load(ctx context.Context) (*AuthData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &AuthData{
		Token:    s.get(keyToken),
		UserID:   s.get(keyUserID),
		Username: s.get(keyUsername),
		Email:    s.get(keyEmail),
	}, nil
}

// IsLoggedIn reports whether a token is stored. A context error reads as
// logged out rather than a failure.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		return false
	}

	return token != ""
}

func (s *Store) get(key string) string {
	v, ok := s.c.Get(key)
	if !ok {
		return ""
	}

	str, ok := v.(string)
	if !ok {
		return ""
	}

	return str
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	return s.c.SaveFile(s.path)
}
