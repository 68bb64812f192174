package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/assignment-board/domain"
)

type pruneRecorder struct {
	cutoffs []time.Time
	removed int
	err     error
}

func (r *pruneRecorder) Append(context.Context, *domain.Activity) error { return nil }

func (r *pruneRecorder) Recent(context.Context, int) ([]domain.Activity, error) { return nil, nil }

func (r *pruneRecorder) Prune(_ context.Context, olderThan time.Time) (int, error) {
	r.cutoffs = append(r.cutoffs, olderThan)
	return r.removed, r.err
}

func TestPruneUsesRetentionWindow(t *testing.T) {
	rec := &pruneRecorder{removed: 3}
	p := NewJournalPruner(rec, nil, PrunerConfig{Interval: time.Minute, Retention: 2 * time.Hour})
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	removed, err := p.Prune(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	require.Len(t, rec.cutoffs, 1)
	assert.Equal(t, now.Add(-2*time.Hour), rec.cutoffs[0])
}

func TestPruneReportsStoreErrors(t *testing.T) {
	rec := &pruneRecorder{err: errors.New("disk full")}
	p := NewJournalPruner(rec, nil, PrunerConfig{})

	_, err := p.Prune(context.Background())
	assert.EqualError(t, err, "disk full")
}

func TestPrunerDefaultsAndStop(t *testing.T) {
	p := NewJournalPruner(nil, nil, PrunerConfig{Interval: time.Millisecond})
	assert.Equal(t, time.Hour, p.cfg.Interval)
	assert.Equal(t, 7*24*time.Hour, p.cfg.Retention)
	assert.Len(t, p.cron.Entries(), 1)

	removed, err := p.Prune(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	p.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)
}
