package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/api/view"
	"github.com/fastygo/assignment-board/pkg/httpcontext"
)

// PagesHandler serves the static navigation targets around the board.
type PagesHandler struct {
	baseHandler
	opts view.Options
}

func NewPagesHandler(opts view.Options, adapter *httpcontext.Adapter, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		baseHandler: newBaseHandler(adapter, logger),
		opts:        opts,
	}
}

// Add has no creation flow yet.
func (h *PagesHandler) Add(ctx *fasthttp.RequestCtx) {
	h.notImplemented(ctx, "Adding assignments")
}

// Edit has no edit flow yet.
func (h *PagesHandler) Edit(ctx *fasthttp.RequestCtx) {
	h.notImplemented(ctx, "Editing assignments")
}

func (h *PagesHandler) Help(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondPage(ctx, stdCtx, http.StatusOK, h.opts, nil, view.Help())
}

func (h *PagesHandler) notImplemented(ctx *fasthttp.RequestCtx, feature string) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.logger.Debug("placeholder control used", zap.String("feature", feature))
	h.respondPage(ctx, stdCtx, http.StatusNotImplemented, h.opts, nil, view.NotImplemented(feature))
}
