package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
)

// usersKey is the store key holding the full user list as a JSON array.
const usersKey = "users"

// Repository persists the registered-user list.
type Repository interface {
	// All returns every registered user, in registration order. An absent
	// list reads as empty.
	All(ctx context.Context) ([]User, error)

	// Replace overwrites the whole list. There is no merge or dedup; the
	// import path relies on that.
	Replace(ctx context.Context, list []User) error
}

// StoreRepository keeps the user list as a single JSON document in the
// key/value store, mirroring the persisted browser format.
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) All(ctx context.Context) ([]User, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read user list: %w", err)
	}
	if raw == "" {
		return []User{}, nil
	}

	var list []User
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}
	return list, nil
}

func (r *StoreRepository) Replace(ctx context.Context, list []User) error {
	if list == nil {
		list = []User{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode user list: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, string(b)); err != nil {
		return fmt.Errorf("failed to write user list: %w", err)
	}
	return nil
}
