package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/api/transport"
	"github.com/fastygo/assignment-board/pkg/httpcontext"
	boardUC "github.com/fastygo/assignment-board/usecase/board"
)

type ActivityHandler struct {
	baseHandler
	uc *boardUC.UseCase
}

func NewActivityHandler(uc *boardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Recent mutation attempts, newest first
// @Tags activity
// @Router /api/activity [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	limit := transport.ParseLimit(ctx, "limit", 50, 500)
	entries, err := h.uc.Activity(stdCtx, limit)
	if err != nil {
		h.logger.Error("failed to read activity journal", zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(entries, transport.ListMeta{Count: len(entries), Limit: limit}))
}
