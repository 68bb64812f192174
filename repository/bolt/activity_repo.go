package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/internal/infrastructure/journal"
	"github.com/fastygo/assignment-board/repository"
)

const activityKind = "activity"

type activityRepository struct {
	store *journal.Store
}

// NewActivityRepository returns a journal-backed ActivityRepository.
func NewActivityRepository(store *journal.Store) repository.ActivityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) Append(_ context.Context, entry *domain.Activity) error {
	if entry == nil {
		return domain.ErrInvalidPayload
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	item, err := r.store.Append(journal.Item{
		ID:        entry.ID,
		Kind:      activityKind,
		Data:      payload,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return err
	}
	entry.ID = item.ID
	return nil
}

func (r *activityRepository) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	items, err := r.store.Recent(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Activity, 0, len(items))
	for _, item := range items {
		if item.Kind != activityKind {
			continue
		}
		var entry domain.Activity
		if err := json.Unmarshal(item.Data, &entry); err != nil {
			continue
		}
		entry.ID = item.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *activityRepository) Prune(_ context.Context, olderThan time.Time) (int, error) {
	return r.store.Prune(olderThan)
}
