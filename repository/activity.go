package repository

import (
	"context"
	"time"

	"github.com/fastygo/assignment-board/domain"
)

// ActivityRepository is an append-only journal of mutation attempts.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.Activity) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
	Prune(ctx context.Context, olderThan time.Time) (int, error)
}
