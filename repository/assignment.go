package repository

import (
	"context"

	"github.com/fastygo/assignment-board/domain"
)

// AssignmentRepository is the board's view of the external assignments service.
type AssignmentRepository interface {
	List(ctx context.Context) ([]domain.Assignment, error)
	Patch(ctx context.Context, id domain.AssignmentID, patch domain.AssignmentPatch) error
	Delete(ctx context.Context, id domain.AssignmentID) error
}
