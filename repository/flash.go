package repository

import (
	"context"

	"github.com/fastygo/assignment-board/domain"
)

// FlashRepository keeps transient notices for a browser session until they are shown.
type FlashRepository interface {
	Push(ctx context.Context, sessionID string, notice domain.Notice) error
	Pop(ctx context.Context, sessionID string) ([]domain.Notice, error)
}
