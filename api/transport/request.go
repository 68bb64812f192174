package transport

import (
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
)

// ToggleRequest is the completion form posted by a card checkbox.
// An unchecked checkbox sends no value, which means false.
type ToggleRequest struct {
	Completed bool
}

func ParseToggleRequest(ctx *fasthttp.RequestCtx) ToggleRequest {
	raw := strings.TrimSpace(string(ctx.FormValue("completed")))
	if raw == "" {
		return ToggleRequest{}
	}
	if raw == "on" {
		return ToggleRequest{Completed: true}
	}
	completed, _ := strconv.ParseBool(raw)
	return ToggleRequest{Completed: completed}
}

// DeleteRequest carries the user's answer to the delete confirmation.
type DeleteRequest struct {
	Confirmed bool
}

func ParseDeleteRequest(ctx *fasthttp.RequestCtx) DeleteRequest {
	raw := strings.ToLower(strings.TrimSpace(string(ctx.FormValue("confirm"))))
	return DeleteRequest{Confirmed: raw == "yes" || raw == "true"}
}

// ParseLimit reads a positive integer query argument with a fallback and an upper bound.
func ParseLimit(ctx *fasthttp.RequestCtx, name string, fallback, max int) int {
	v, err := strconv.Atoi(string(ctx.QueryArgs().Peek(name)))
	if err != nil || v <= 0 {
		return fallback
	}
	if v > max {
		return max
	}
	return v
}
