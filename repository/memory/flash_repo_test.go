package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/assignment-board/domain"
)

func TestFlashIsShownOnce(t *testing.T) {
	repo := NewFlashRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Push(ctx, "s1", domain.Notice{Kind: domain.NoticeSuccess, Message: "one"}))
	require.NoError(t, repo.Push(ctx, "s1", domain.Notice{Kind: domain.NoticeError, Message: "two"}))
	require.NoError(t, repo.Push(ctx, "s2", domain.Notice{Message: "other"}))

	notices, err := repo.Pop(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "one", notices[0].Message)
	assert.Equal(t, "two", notices[1].Message)

	notices, err = repo.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, notices)

	notices, err = repo.Pop(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, notices, 1)
}

func TestFlashExpires(t *testing.T) {
	repo := NewFlashRepository(time.Minute).(*flashRepository)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Push(ctx, "s1", domain.Notice{Message: "stale"}))
	now = now.Add(2 * time.Minute)

	notices, err := repo.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, notices)

	require.NoError(t, repo.Push(ctx, "s2", domain.Notice{Message: "stale"}))
	now = now.Add(2 * time.Minute)
	require.NoError(t, repo.Push(ctx, "s3", domain.Notice{Message: "fresh"}))
	assert.NotContains(t, repo.entries, "s2")
}

func TestFlashRequiresSession(t *testing.T) {
	repo := NewFlashRepository(0)
	assert.ErrorIs(t, repo.Push(context.Background(), "", domain.Notice{}), domain.ErrInvalidPayload)
}
