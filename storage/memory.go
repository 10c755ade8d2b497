package storage

import "sync"

// MemoryStore keeps records in a mutex-guarded map. It backs the service when
// no database is configured, and the tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}

	// Copy so callers can't mutate the stored document.
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = stored

	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)

	return nil
}
