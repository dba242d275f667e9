package storage

import "context"

// MemoryStore is a map-backed Store for tests and ephemeral runs. The
// application is single-threaded (one REPL loop), so no locking is needed.
type MemoryStore struct {
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.data = make(map[string]string)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string, len(s.data))
	for k, v := range s.data {
		result[k] = v
	}
	return result, nil
}
