package handler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/api/transport"
	"github.com/fastygo/assignment-board/api/view"
	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/pkg/httpcontext"
	"github.com/fastygo/assignment-board/pkg/logger"
	"github.com/fastygo/assignment-board/repository"
	boardUC "github.com/fastygo/assignment-board/usecase/board"
)

var (
	noticeUpdated = domain.Notice{Kind: domain.NoticeSuccess, Message: "Assignment updated."}
	noticeDeleted = domain.Notice{Kind: domain.NoticeSuccess, Message: "Assignment deleted."}
)

type BoardHandler struct {
	baseHandler
	uc      *boardUC.UseCase
	flashes repository.FlashRepository
	opts    view.Options
}

func NewBoardHandler(uc *boardUC.UseCase, flashes repository.FlashRepository, opts view.Options, adapter *httpcontext.Adapter, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		flashes:     flashes,
		opts:        opts,
	}
}

// Page renders the board page. With deferred loading the page ships a
// loading placeholder that fetches /board once it is in the browser.
func (h *BoardHandler) Page(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	board := domain.Board{State: domain.StateLoading}
	if !h.opts.DeferredLoad || httpcontext.IsPartial(ctx) {
		board = h.uc.Load(stdCtx)
	}
	h.respondPage(ctx, stdCtx, http.StatusOK, h.opts, h.popNotices(stdCtx), view.Board(h.opts, board))
}

// Fragment always loads and renders the #board fragment.
func (h *BoardHandler) Fragment(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	board := h.uc.Load(stdCtx)
	h.respondPage(ctx, stdCtx, http.StatusOK, h.opts, h.popNotices(stdCtx), view.Board(h.opts, board))
}

// JSON exposes the grouped board for non-browser clients.
func (h *BoardHandler) JSON(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	board := h.uc.Load(stdCtx)
	if board.State == domain.StateError && board.Err != nil {
		h.respondError(ctx, board.Err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, board)
}

// Toggle sends the completion change. htmx callers get 204 on success and
// leave the checkbox as clicked. On failure nothing is re-fetched: only the
// checkbox is swapped back to its previous value next to an error notice.
func (h *BoardHandler) Toggle(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathID(ctx)
	req := transport.ParseToggleRequest(ctx)
	err := h.uc.Toggle(stdCtx, id, req.Completed)

	if !httpcontext.IsPartial(ctx) {
		if err != nil {
			h.pushNotice(stdCtx, domain.NoticeFromError(err))
		} else {
			h.pushNotice(stdCtx, noticeUpdated)
		}
		h.redirect(ctx, "/")
		return
	}

	if err == nil {
		ctx.SetStatusCode(http.StatusNoContent)
		return
	}

	ctx.Response.Header.Set("HX-Reswap", "none")
	h.respondHTML(ctx, stdCtx, http.StatusOK, templ.Join(
		view.Checkbox(id, !req.Completed, true),
		view.Notices([]domain.Notice{domain.NoticeFromError(err)}, true),
	))
}

// ConfirmDelete renders the confirmation step for browsers without htmx.
func (h *BoardHandler) ConfirmDelete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondPage(ctx, stdCtx, http.StatusOK, h.opts, nil, view.ConfirmDelete(pathID(ctx)))
}

// Delete removes a record once the request carries the confirmation, then
// renders the reloaded board. Without confirmation nothing is sent upstream.
func (h *BoardHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathID(ctx)
	req := transport.ParseDeleteRequest(ctx)
	confirm := boardUC.ConfirmFunc(func(context.Context, domain.AssignmentID) bool {
		return req.Confirmed
	})

	if !httpcontext.IsPartial(ctx) {
		// the redirect target reads the board, so nothing is reloaded here
		outcome, err := h.uc.Remove(stdCtx, id, confirm)
		switch {
		case err != nil:
			h.pushNotice(stdCtx, domain.NoticeFromError(err))
		case outcome != domain.OutcomeCancelled:
			h.pushNotice(stdCtx, noticeDeleted)
		}
		h.redirect(ctx, "/")
		return
	}

	result, err := h.uc.Delete(stdCtx, id, confirm)
	switch {
	case err != nil:
		ctx.Response.Header.Set("HX-Reswap", "none")
		h.respondHTML(ctx, stdCtx, http.StatusOK, view.Notices([]domain.Notice{domain.NoticeFromError(err)}, true))

	case result.Outcome == domain.OutcomeCancelled:
		ctx.SetStatusCode(http.StatusNoContent)

	default:
		h.respondHTML(ctx, stdCtx, http.StatusOK, templ.Join(
			view.Board(h.opts, result.Board),
			view.Notices([]domain.Notice{noticeDeleted}, true),
		))
	}
}

func (h *BoardHandler) popNotices(ctx context.Context) []domain.Notice {
	if h.flashes == nil {
		return nil
	}
	notices, err := h.flashes.Pop(ctx, httpcontext.SessionFromContext(ctx))
	if err != nil {
		logger.WithRequestID(ctx, h.logger).Warn("failed to read notices", zap.Error(err))
		return nil
	}
	return notices
}

func (h *BoardHandler) pushNotice(ctx context.Context, notice domain.Notice) {
	if h.flashes == nil {
		return
	}
	if err := h.flashes.Push(ctx, httpcontext.SessionFromContext(ctx), notice); err != nil {
		logger.WithRequestID(ctx, h.logger).Warn("failed to store notice", zap.Error(err))
	}
}
