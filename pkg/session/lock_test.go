package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/frontier/pkg/domain"
)

type nopStore struct{}

func (nopStore) Save(ctx context.Context, sessionID string, s *domain.Session) error { return nil }
func (nopStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}
func (nopStore) Delete(ctx context.Context, sessionID string) error { return nil }
func (nopStore) List(ctx context.Context) ([]string, error)         { return nil, nil }

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(nopStore{})
	ctx := context.Background()
	count := 10000

	for i := 0; i < count; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, sid, domain.NewSession(sid))
		_, _ = mgr.Update(ctx, sid, func(context.Context, *domain.Session) error { return nil })
		_ = mgr.Delete(ctx, sid)
	}

	if n := len(mgr.locks); n != 0 {
		t.Errorf("%d locks remaining in memory after Delete", n)
	}
}
