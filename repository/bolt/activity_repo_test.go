package bolt_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/internal/infrastructure/journal"
	"github.com/fastygo/assignment-board/repository/bolt"
)

func TestActivityRoundTrip(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"), "activity")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repo := bolt.NewActivityRepository(store)
	ctx := context.Background()
	done := true
	base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	first := &domain.Activity{Action: domain.ActionToggle, AssignmentID: "1", Completed: &done, Outcome: domain.OutcomeOK, Timestamp: base}
	second := &domain.Activity{Action: domain.ActionDelete, AssignmentID: "2", Outcome: domain.OutcomeFailed, Error: "boom", Timestamp: base.Add(time.Minute)}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))
	assert.NotEmpty(t, first.ID)

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ActionDelete, entries[0].Action)
	assert.Equal(t, "boom", entries[0].Error)
	assert.Equal(t, first.ID, entries[1].ID)
	require.NotNil(t, entries[1].Completed)
	assert.True(t, *entries[1].Completed)

	removed, err := repo.Prune(ctx, base.Add(30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestAppendRejectsNil(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"), "activity")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.ErrorIs(t, bolt.NewActivityRepository(store).Append(context.Background(), nil), domain.ErrInvalidPayload)
}
