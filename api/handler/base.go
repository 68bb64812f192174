package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/api/transport"
	"github.com/fastygo/assignment-board/api/view"
	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/pkg/httpcontext"
	"github.com/fastygo/assignment-board/pkg/logger"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

// respondHTML renders c and writes it with status. Rendering goes through a
// buffer so a failing component never leaves a half-written page.
func (h baseHandler) respondHTML(ctx *fasthttp.RequestCtx, stdCtx context.Context, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(stdCtx, &buf); err != nil {
		logger.WithRequestID(stdCtx, h.logger).Error("failed to render view", zap.Error(err))
		ctx.Error("internal error", http.StatusInternalServerError)
		return
	}
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBody(buf.Bytes())
}

// respondPage renders body as a fragment for htmx requests and as a full page otherwise.
func (h baseHandler) respondPage(ctx *fasthttp.RequestCtx, stdCtx context.Context, status int, opts view.Options, notices []domain.Notice, body templ.Component) {
	if httpcontext.IsPartial(ctx) {
		if len(notices) > 0 {
			body = templ.Join(body, view.Notices(notices, true))
		}
		h.respondHTML(ctx, stdCtx, status, body)
		return
	}
	h.respondHTML(ctx, stdCtx, status, view.Layout(opts, notices, body))
}

func (h baseHandler) redirect(ctx *fasthttp.RequestCtx, location string) {
	ctx.Response.Header.Set("Location", location)
	ctx.SetStatusCode(http.StatusSeeOther)
}

func pathID(ctx *fasthttp.RequestCtx) domain.AssignmentID {
	id, _ := ctx.UserValue("id").(string)
	return domain.AssignmentID(id)
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, string(domain.ErrCodeUnauthorized)
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeNotImplemented):
		return http.StatusNotImplemented, string(domain.ErrCodeNotImplemented)
	case domain.IsDomainError(err, domain.ErrCodeFetchFailed),
		domain.IsDomainError(err, domain.ErrCodeUpdateFailed),
		domain.IsDomainError(err, domain.ErrCodeDeleteFailed):
		return http.StatusBadGateway, string(domain.CodeOf(err))
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
