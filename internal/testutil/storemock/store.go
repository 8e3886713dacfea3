package storemock

import "context"

// Store is a function-backed mock that satisfies store.Store.
// With no hooks set it behaves like an in-memory store, which is what most
// usecase tests want; override the hooks to inject failures.
type Store struct {
	ReadFn  func(ctx context.Context, key string) ([]byte, bool, error)
	WriteFn func(ctx context.Context, key string, value []byte) error

	data map[string][]byte
}

func (m *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if m.ReadFn != nil {
		return m.ReadFn(ctx, key)
	}
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *Store) Write(ctx context.Context, key string, value []byte) error {
	if m.WriteFn != nil {
		return m.WriteFn(ctx, key, value)
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
	return nil
}

// Seed sets a raw stored value, bypassing any hooks.
func (m *Store) Seed(key string, value []byte) {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
}
