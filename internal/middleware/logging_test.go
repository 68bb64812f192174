package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := AccessLog(zap.New(core))

	for _, status := range []int{fasthttp.StatusOK, fasthttp.StatusNotImplemented, fasthttp.StatusNotFound} {
		handler := mw(func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set("X-Request-ID", "req-1")
			ctx.SetStatusCode(status)
		})
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/board")
		ctx.Request.Header.Set("HX-Request", "true")
		handler(ctx)
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/board", fields["path"])
	assert.Equal(t, int64(200), fields["status"])
	assert.Equal(t, true, fields["htmx"])
	assert.Equal(t, "req-1", fields["request_id"])
}
