package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/repository"
)

type flashEntry struct {
	notices   []domain.Notice
	expiresAt time.Time
}

type flashRepository struct {
	mu      sync.Mutex
	entries map[string]*flashEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewFlashRepository returns an in-process flash repository, used when Redis is disabled.
func NewFlashRepository(ttl time.Duration) repository.FlashRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &flashRepository{
		entries: make(map[string]*flashEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *flashRepository) Push(_ context.Context, sessionID string, notice domain.Notice) error {
	if sessionID == "" {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evict(now)

	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &flashEntry{}
		r.entries[sessionID] = entry
	}
	entry.notices = append(entry.notices, notice)
	entry.expiresAt = now.Add(r.ttl)
	return nil
}

func (r *flashRepository) Pop(_ context.Context, sessionID string) ([]domain.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return nil, nil
	}
	delete(r.entries, sessionID)
	if r.now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.notices, nil
}

func (r *flashRepository) evict(now time.Time) {
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}
