// Package fakeapi runs an in-memory stand-in for the assignments service.
package fakeapi

import (
	"encoding/json"
	"net"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/fastygo/assignment-board/domain"
)

// BaseURL is the address the fake answers on; the host is never resolved.
const BaseURL = "http://assignments.test"

const collectionPath = "/api/assignments"

// Request is a recorded call.
type Request struct {
	Method        string
	Path          string
	Body          string
	Authorization string
	RequestID     string
}

type Server struct {
	mu       sync.Mutex
	records  []domain.Assignment
	rawList  []byte
	statuses map[string]int
	requests []Request

	ln     *fasthttputil.InmemoryListener
	server *fasthttp.Server
}

// New starts the fake and stops it when the test ends.
func New(t testing.TB, records ...domain.Assignment) *Server {
	t.Helper()

	s := &Server{
		records:  append([]domain.Assignment(nil), records...),
		statuses: make(map[string]int),
		ln:       fasthttputil.NewInmemoryListener(),
	}
	s.server = &fasthttp.Server{Handler: s.handle}

	go func() {
		_ = s.server.Serve(s.ln)
	}()
	t.Cleanup(func() {
		_ = s.server.Shutdown()
		_ = s.ln.Close()
	})
	return s
}

// Client returns a fasthttp client wired to the in-memory listener.
func (s *Server) Client() *fasthttp.Client {
	return &fasthttp.Client{
		Dial: func(string) (net.Conn, error) {
			return s.ln.Dial()
		},
	}
}

// SetStatus forces every request with method to answer with status.
func (s *Server) SetStatus(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[method] = status
}

// SetRawList makes GET return body verbatim.
func (s *Server) SetRawList(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawList = []byte(body)
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many calls used method.
func (s *Server) Count(method string) int {
	n := 0
	for _, req := range s.Requests() {
		if req.Method == method {
			n++
		}
	}
	return n
}

// Records returns the current server-side records.
func (s *Server) Records() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Assignment(nil), s.records...)
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	method := string(ctx.Method())
	path := string(ctx.Path())
	s.requests = append(s.requests, Request{
		Method:        method,
		Path:          path,
		Body:          string(ctx.PostBody()),
		Authorization: string(ctx.Request.Header.Peek("Authorization")),
		RequestID:     string(ctx.Request.Header.Peek("X-Request-ID")),
	})

	if status, ok := s.statuses[method]; ok {
		ctx.SetStatusCode(status)
		return
	}

	switch {
	case path == collectionPath && method == fasthttp.MethodGet:
		ctx.SetContentType("application/json")
		if s.rawList != nil {
			ctx.SetBody(s.rawList)
			return
		}
		body, _ := json.Marshal(s.records)
		ctx.SetBody(body)

	case strings.HasPrefix(path, collectionPath+"/"):
		id, _ := url.PathUnescape(strings.TrimPrefix(path, collectionPath+"/"))
		s.handleItem(ctx, method, domain.AssignmentID(id))

	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (s *Server) handleItem(ctx *fasthttp.RequestCtx, method string, id domain.AssignmentID) {
	pos := -1
	for i, record := range s.records {
		if record.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}

	switch method {
	case fasthttp.MethodPatch:
		var patch domain.AssignmentPatch
		if err := json.Unmarshal(ctx.PostBody(), &patch); err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			return
		}
		if patch.Completed != nil {
			s.records[pos].Completed = *patch.Completed
		}
		ctx.SetStatusCode(fasthttp.StatusOK)
	case fasthttp.MethodDelete:
		s.records = append(s.records[:pos], s.records[pos+1:]...)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	default:
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
	}
}
