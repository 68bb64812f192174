package board

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/pkg/logger"
	"github.com/fastygo/assignment-board/repository"
)

// Confirmer decides whether a destructive action may proceed.
type Confirmer interface {
	Confirm(ctx context.Context, id domain.AssignmentID) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, id domain.AssignmentID) bool

func (f ConfirmFunc) Confirm(ctx context.Context, id domain.AssignmentID) bool {
	return f(ctx, id)
}

// Always and Never are fixed confirmers.
var (
	Always Confirmer = ConfirmFunc(func(context.Context, domain.AssignmentID) bool { return true })
	Never  Confirmer = ConfirmFunc(func(context.Context, domain.AssignmentID) bool { return false })
)

// DeleteResult describes how a delete request ended. Board is only set when
// the board was reloaded afterwards.
type DeleteResult struct {
	Outcome  domain.Outcome
	Board    domain.Board
	Reloaded bool
}

// UseCase is the board's view controller: it reads the current snapshot from
// the assignments service and turns user actions into service mutations.
// It keeps no record state between calls.
type UseCase struct {
	assignments repository.AssignmentRepository
	activity    repository.ActivityRepository
	logger      *zap.Logger
	labelLayout string
}

func New(assignments repository.AssignmentRepository, activity repository.ActivityRepository, logger *zap.Logger, labelLayout string) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if labelLayout == "" {
		labelLayout = DefaultLabelLayout
	}
	return &UseCase{
		assignments: assignments,
		activity:    activity,
		logger:      logger,
		labelLayout: labelLayout,
	}
}

// Load fetches the current snapshot and builds the board to render.
func (uc *UseCase) Load(ctx context.Context) domain.Board {
	records, err := uc.assignments.List(ctx)
	if err != nil {
		logger.WithRequestID(ctx, uc.logger).Error("failed to fetch assignments", zap.Error(err))
		fetchErr := domain.WrapError(domain.ErrCodeFetchFailed, "failed to fetch assignments", err)
		return domain.Board{
			State:   domain.StateError,
			Message: domain.NoticeFromError(fetchErr).Message,
			Err:     fetchErr,
		}
	}
	return uc.Build(records)
}

// Build turns a fetched snapshot into a board without touching the service.
func (uc *UseCase) Build(records []domain.Assignment) domain.Board {
	if len(records) == 0 {
		return domain.Board{
			State:   domain.StateEmpty,
			Message: domain.EmptyMessage,
		}
	}
	return domain.Board{
		State:  domain.StatePopulated,
		Groups: GroupByDueDate(records, uc.labelLayout),
		Total:  len(records),
	}
}

// Toggle sends a single partial update for the completion flag. The board is
// not reloaded; callers keep showing what the user clicked.
func (uc *UseCase) Toggle(ctx context.Context, id domain.AssignmentID, completed bool) error {
	if id == "" {
		return domain.WrapError(domain.ErrCodeUpdateFailed, "failed to update assignment", domain.ErrMissingID)
	}

	entry := &domain.Activity{
		Action:       domain.ActionToggle,
		AssignmentID: id,
		Completed:    &completed,
		Outcome:      domain.OutcomeOK,
	}

	if err := uc.assignments.Patch(ctx, id, domain.CompletionPatch(completed)); err != nil {
		logger.WithRequestID(ctx, uc.logger).Warn("failed to update assignment",
			zap.String("assignment_id", id.String()),
			zap.Bool("completed", completed),
			zap.Error(err),
		)
		entry.Outcome = domain.OutcomeFailed
		entry.Error = err.Error()
		uc.record(ctx, entry)
		return domain.WrapError(domain.ErrCodeUpdateFailed, "failed to update assignment", err)
	}

	uc.record(ctx, entry)
	return nil
}

// Delete asks for confirmation, deletes the record and reloads the board.
// A record that is already gone counts as deleted.
func (uc *UseCase) Delete(ctx context.Context, id domain.AssignmentID, confirm Confirmer) (DeleteResult, error) {
	outcome, err := uc.Remove(ctx, id, confirm)
	if err != nil || outcome == domain.OutcomeCancelled {
		return DeleteResult{Outcome: outcome}, err
	}
	return DeleteResult{
		Outcome:  outcome,
		Board:    uc.Load(ctx),
		Reloaded: true,
	}, nil
}

// Remove is Delete without the reload, for callers that read the board
// themselves afterwards (a redirect back to the page).
func (uc *UseCase) Remove(ctx context.Context, id domain.AssignmentID, confirm Confirmer) (domain.Outcome, error) {
	if id == "" {
		return domain.OutcomeFailed, domain.WrapError(domain.ErrCodeDeleteFailed, "failed to delete assignment", domain.ErrMissingID)
	}
	if confirm == nil || !confirm.Confirm(ctx, id) {
		uc.record(ctx, &domain.Activity{
			Action:       domain.ActionDelete,
			AssignmentID: id,
			Outcome:      domain.OutcomeCancelled,
		})
		return domain.OutcomeCancelled, nil
	}

	entry := &domain.Activity{
		Action:       domain.ActionDelete,
		AssignmentID: id,
		Outcome:      domain.OutcomeOK,
	}

	if err := uc.assignments.Delete(ctx, id); err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			logger.WithRequestID(ctx, uc.logger).Warn("failed to delete assignment",
				zap.String("assignment_id", id.String()),
				zap.Error(err),
			)
			entry.Outcome = domain.OutcomeFailed
			entry.Error = err.Error()
			uc.record(ctx, entry)
			return domain.OutcomeFailed, domain.WrapError(domain.ErrCodeDeleteFailed, "failed to delete assignment", err)
		}
		logger.WithRequestID(ctx, uc.logger).Info("assignment already deleted", zap.String("assignment_id", id.String()))
		entry.Outcome = domain.OutcomeAlreadyDeleted
	}

	uc.record(ctx, entry)
	return entry.Outcome, nil
}

// Activity returns the most recent journal entries.
func (uc *UseCase) Activity(ctx context.Context, limit int) ([]domain.Activity, error) {
	if uc.activity == nil {
		return []domain.Activity{}, nil
	}
	return uc.activity.Recent(ctx, limit)
}

func (uc *UseCase) record(ctx context.Context, entry *domain.Activity) {
	if uc.activity == nil {
		return
	}
	entry.RequestID = logger.RequestIDFromContext(ctx)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if err := uc.activity.Append(ctx, entry); err != nil {
		uc.logger.Warn("failed to journal activity",
			zap.String("action", string(entry.Action)),
			zap.String("assignment_id", entry.AssignmentID.String()),
			zap.Error(err),
		)
	}
}
