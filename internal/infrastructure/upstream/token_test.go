package upstream

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/fastygo/assignment-board/internal/config"
)

func TestNewTokenSourcePrefersSecret(t *testing.T) {
	assert.Nil(t, NewTokenSource(config.UpstreamConfig{}))

	static := NewTokenSource(config.UpstreamConfig{Token: "abc"})
	token, err := static.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, ok := NewTokenSource(config.UpstreamConfig{Token: "abc", JWTSecret: "key"}).(*JWTSource)
	assert.True(t, ok)
}

func TestJWTSourceClaims(t *testing.T) {
	src := NewJWTSource("key", "board", "svc", 0)
	issued := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	src.now = func() time.Time { return issued }

	raw, err := src.Token()
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		assert.Equal(t, jwt.SigningMethodHS256, tok.Method)
		return []byte("key"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "board", claims.Issuer)
	assert.Equal(t, "svc", claims.Subject)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestPing(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	var status atomic.Int32
	status.Store(fasthttp.StatusOK)
	srv := &fasthttp.Server{Handler: func(ctx *fasthttp.RequestCtx) { ctx.SetStatusCode(int(status.Load())) }}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	client := &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
	ctx := context.Background()

	assert.True(t, Ping(ctx, client, "http://assignments.test/api/assignments"))

	status.Store(fasthttp.StatusNotFound)
	assert.True(t, Ping(ctx, client, "http://assignments.test/api/assignments"))

	status.Store(fasthttp.StatusBadGateway)
	assert.False(t, Ping(ctx, client, "http://assignments.test/api/assignments"))
}
