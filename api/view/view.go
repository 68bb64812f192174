// Package view renders the board as HTML fragments and pages.
//
// Components are plain templ.Components so handlers can render either a
// fragment (htmx requests) or the fragment wrapped in Layout.
package view

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/fastygo/assignment-board/domain"
)

// DeleteStyle selects how the delete control is drawn.
type DeleteStyle string

const (
	DeleteText DeleteStyle = "text"
	DeleteIcon DeleteStyle = "icon"
)

// Options is the configuration surface of the rendered board.
type Options struct {
	Title        string
	DateLayout   string
	DeleteStyle  DeleteStyle
	DeferredLoad bool
	AddURL       string
	HelpURL      string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Assignments"
	}
	if o.DeleteStyle == "" {
		o.DeleteStyle = DeleteText
	}
	if o.AddURL == "" {
		o.AddURL = "/add"
	}
	if o.HelpURL == "" {
		o.HelpURL = "/help"
	}
	return o
}

// Paths used by the rendered controls.
func CompletionPath(id domain.AssignmentID) string {
	return "/assignments/" + url.PathEscape(id.String()) + "/completion"
}

func DeletePath(id domain.AssignmentID) string {
	return "/assignments/" + url.PathEscape(id.String()) + "/delete"
}

func EditPath(id domain.AssignmentID) string {
	return "/assignments/" + url.PathEscape(id.String()) + "/edit"
}

func cardID(id domain.AssignmentID) string {
	return "card-" + url.PathEscape(id.String())
}

func checkboxID(id domain.AssignmentID) string {
	return "check-" + url.PathEscape(id.String())
}

// htmlWriter accumulates the first write error so components read linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"")
	h.text(value)
	h.raw("\"")
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}
