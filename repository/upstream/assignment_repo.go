package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/assignment-board/domain"
	upstreamInfra "github.com/fastygo/assignment-board/internal/infrastructure/upstream"
	"github.com/fastygo/assignment-board/pkg/logger"
	"github.com/fastygo/assignment-board/repository"
)

const collectionPath = "/api/assignments"

// Doer is the subset of fasthttp.Client used by the repository.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type assignmentRepository struct {
	client  Doer
	baseURL string
	tokens  upstreamInfra.TokenSource
	timeout time.Duration
}

// NewAssignmentRepository returns a REST-backed implementation of AssignmentRepository.
func NewAssignmentRepository(client Doer, baseURL string, tokens upstreamInfra.TokenSource, timeout time.Duration) repository.AssignmentRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &assignmentRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		timeout: timeout,
	}
}

func (r *assignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := r.do(ctx, fasthttp.MethodGet, collectionPath, nil, func(body []byte) error {
		var raw []json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			return domain.WrapError(domain.ErrCodeInvalid, "malformed assignments payload", err)
		}
		assignments = make([]domain.Assignment, 0, len(raw))
		for _, item := range raw {
			var a domain.Assignment
			// a record that cannot be read is left out instead of failing the list
			if err := json.Unmarshal(item, &a); err != nil {
				continue
			}
			assignments = append(assignments, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) Patch(ctx context.Context, id domain.AssignmentID, patch domain.AssignmentPatch) error {
	if id == "" {
		return domain.ErrMissingID
	}
	body, err := json.Marshal(patch)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "invalid patch", err)
	}
	return r.do(ctx, fasthttp.MethodPatch, itemPath(id), body, nil)
}

func (r *assignmentRepository) Delete(ctx context.Context, id domain.AssignmentID) error {
	if id == "" {
		return domain.ErrMissingID
	}
	return r.do(ctx, fasthttp.MethodDelete, itemPath(id), nil, nil)
}

func (r *assignmentRepository) do(ctx context.Context, method, path string, body []byte, decode func([]byte) error) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "request cancelled", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}
	if r.tokens != nil {
		token, err := r.tokens.Token()
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "failed to build service token", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if err := r.client.DoDeadline(req, resp, r.deadline(ctx)); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "assignments service unreachable", err)
	}

	if err := statusError(resp.StatusCode()); err != nil {
		return err
	}
	if decode != nil {
		return decode(resp.Body())
	}
	return nil
}

func (r *assignmentRepository) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(r.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func statusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == fasthttp.StatusNotFound:
		return domain.ErrAssignmentNotFound
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return domain.WrapError(domain.ErrCodeUnauthorized, fmt.Sprintf("assignments service rejected credentials (%d)", status), domain.ErrUnauthorized)
	case status >= 400 && status < 500:
		return domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("assignments service rejected request (%d)", status))
	default:
		return domain.NewError(domain.ErrCodeUnavailable, fmt.Sprintf("assignments service error (%d)", status))
	}
}

func itemPath(id domain.AssignmentID) string {
	return collectionPath + "/" + url.PathEscape(id.String())
}
