package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tutorhub/client/internal/logging"
	"github.com/tutorhub/client/internal/models"
	"github.com/tutorhub/client/internal/store"
)

// Persisted keys. A session exists if and only if all three are present;
// partial presence is treated as no session.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// AuthAPI is the remote authentication operation the manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
}

// Manager owns the single session value for the process: login, logout,
// restore on cold start, and read access to the current identity. It is the
// sole writer of the persistent store.
type Manager struct {
	store store.Store
	auth  AuthAPI

	mu      sync.RWMutex
	current *models.Session
}

// NewManager constructs a Manager persisting sessions to the provided store.
func NewManager(s store.Store, auth AuthAPI) *Manager {
	if s == nil {
		panic("session: store must not be nil")
	}
	return &Manager{store: s, auth: auth}
}

// SetAuth wires the remote authentication backend after construction. The
// manager doubles as the API client's token source, so the two are built in
// sequence and connected here before any call is made.
func (m *Manager) SetAuth(auth AuthAPI) {
	m.auth = auth
}

// Restore reads the persisted session on process start. Any missing key
// yields no session and leaves the store untouched; a half-written session
// is never repaired, only re-created by a fresh login.
func (m *Manager) Restore(ctx context.Context) (*models.Session, error) {
	access, err := m.store.Get(ctx, keyAccessToken)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	refresh, err := m.store.Get(ctx, keyRefreshToken)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read refresh token: %w", err)
	}

	rawUser, err := m.store.Get(ctx, keyUser)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		logging.FromContext(ctx).Warn("stored user record is malformed, treating as signed out", "error", err)
		return nil, nil
	}

	session := &models.Session{AccessToken: access, RefreshToken: refresh, User: user}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	return session, nil
}

// Login authenticates against the remote API and persists the resulting
// session. Keys are written in a fixed order (access, refresh, user) so an
// interrupted write is always detected by Restore's all-or-nothing check.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if m.auth == nil {
		return nil, errors.New("session: no authentication backend configured")
	}

	session, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	if err := m.store.Put(ctx, keyAccessToken, session.AccessToken); err != nil {
		return nil, fmt.Errorf("persist access token: %w", err)
	}
	if err := m.store.Put(ctx, keyRefreshToken, session.RefreshToken); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}
	if err := m.store.Put(ctx, keyUser, string(rawUser)); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}

	m.mu.Lock()
	m.current = &session
	m.mu.Unlock()

	return &session, nil
}

// Logout clears the persisted session and drops the in-memory one. It never
// fails outward: storage failures are logged and swallowed because logout
// must always appear to succeed to the user.
func (m *Manager) Logout(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if err := m.store.Remove(ctx, key); err != nil {
			logger.Warn("failed to clear session key", "key", key, "error", err)
		}
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Current returns the active session, or nil when signed out.
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AccessToken returns the active bearer token, or "" when signed out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.AccessToken
}
