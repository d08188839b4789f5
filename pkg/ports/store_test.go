package ports_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// jsonStore round-trips sessions through JSON, like the durable adapters do.
type jsonStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *jsonStore) Save(_ context.Context, id string, session *domain.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = b
	return nil
}

func (s *jsonStore) Load(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	b, ok := s.data[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	var out domain.Session
	return &out, json.Unmarshal(b, &out)
}

func (s *jsonStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *jsonStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestSessionStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, &jsonStore{data: make(map[string][]byte)})
}
