package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func formCtx(body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.Header.SetContentType("application/x-www-form-urlencoded")
	ctx.Request.SetBodyString(body)
	return ctx
}

func TestParseToggleRequest(t *testing.T) {
	cases := map[string]bool{
		"":                false,
		"completed=on":    true,
		"completed=true":  true,
		"completed=1":     true,
		"completed=false": false,
		"completed=maybe": false,
	}
	for body, want := range cases {
		assert.Equal(t, want, ParseToggleRequest(formCtx(body)).Completed, body)
	}
}

func TestParseDeleteRequest(t *testing.T) {
	assert.True(t, ParseDeleteRequest(formCtx("confirm=yes")).Confirmed)
	assert.True(t, ParseDeleteRequest(formCtx("confirm=TRUE")).Confirmed)
	assert.False(t, ParseDeleteRequest(formCtx("confirm=no")).Confirmed)
	assert.False(t, ParseDeleteRequest(formCtx("")).Confirmed)
}

func TestParseLimit(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/activity?limit=900&bad=x&neg=-2&ok=7")

	assert.Equal(t, 500, ParseLimit(ctx, "limit", 50, 500))
	assert.Equal(t, 50, ParseLimit(ctx, "bad", 50, 500))
	assert.Equal(t, 50, ParseLimit(ctx, "neg", 50, 500))
	assert.Equal(t, 7, ParseLimit(ctx, "ok", 50, 500))
	assert.Equal(t, 50, ParseLimit(ctx, "missing", 50, 500))
}
