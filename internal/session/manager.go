// Package session tracks the currently logged-in user: an in-memory cache
// backed by a persisted pointer in the key/value store.
package session

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/ramadankeeper/internal/logging"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// currentUserKey holds the session pointer: the full User JSON, or absent
// when logged out.
const currentUserKey = "currentUser"

// Manager owns the session lifecycle: populated at startup from the
// persisted pointer, updated on login/register, cleared on logout.
type Manager struct {
	store  storage.Store
	log    logging.Logger
	cached *users.User
}

func NewManager(store storage.Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Current returns the logged-in user, or nil when there is none. The cache
// is consulted first; otherwise the persisted pointer is deserialized. A
// malformed payload is logged and treated as "not logged in", never
// returned as an error.
func (m *Manager) Current(ctx context.Context) *users.User {
	if m.cached != nil {
		return m.cached
	}

	raw, err := m.store.Get(ctx, currentUserKey)
	if err != nil {
		m.log.Error(ctx, "failed to read session pointer", "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var u users.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.log.Warn(ctx, "malformed session payload, treating as logged out", "error", err)
		return nil
	}

	m.cached = &u
	return m.cached
}

// Login establishes u as the session user, in memory and persisted.
func (m *Manager) Login(ctx context.Context, u *users.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, currentUserKey, string(b)); err != nil {
		return err
	}
	m.cached = u
	return nil
}

// Logout clears both the cache and the persisted pointer.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, currentUserKey); err != nil {
		return err
	}
	m.cached = nil
	return nil
}

// Reload drops the cache so the next Current re-reads the persisted
// pointer. Used after an import replaces application state.
func (m *Manager) Reload() {
	m.cached = nil
}
