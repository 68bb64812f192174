package upstream

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/assignment-board/internal/config"
)

// NewClient builds the fasthttp client used to talk to the assignments service.
func NewClient(cfg config.UpstreamConfig) *fasthttp.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &fasthttp.Client{
		Name:                "assignment-board",
		MaxConnsPerHost:     cfg.MaxConns,
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxIdleConnDuration: 30 * time.Second,
	}
}

// Ping issues a GET against the service with a short deadline and reports
// whether it answered with any non-5xx status.
func Ping(ctx context.Context, client *fasthttp.Client, url string) bool {
	if client == nil || url == "" {
		return false
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(2 * time.Second)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.DoDeadline(req, resp, deadline); err != nil {
		return false
	}
	return resp.StatusCode() < fasthttp.StatusInternalServerError
}
