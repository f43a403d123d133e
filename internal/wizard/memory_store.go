package wizard

import (
	"context"
	"sync"
	"time"

	domain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
)

// MemoryStore keeps drafts in-process. Used when no redis address is
// configured and by the test suite.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]entry
}

type entry struct {
	draft   domain.Draft
	savedAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]entry)}
}

func (s *MemoryStore) Save(ctx context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = entry{draft: *d, savedAt: time.Now()}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	s.mu.RLock()
	e, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok || time.Since(e.savedAt) > DraftTTL {
		return nil, httperr.ErrBusiness("draft_not_found")
	}

	d := e.draft
	return &d, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
