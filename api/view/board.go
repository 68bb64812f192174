package view

import (
	"context"

	"github.com/a-h/templ"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/usecase/board"
)

const deleteConfirmText = "Delete this assignment?"

// Board renders the #board fragment for whichever state the board is in.
// Every render rebuilds the whole fragment.
func Board(opts Options, b domain.Board) templ.Component {
	opts = opts.withDefaults()
	return component(func(ctx context.Context, h *htmlWriter) {
		state := b.State
		if state == "" {
			state = domain.StateLoading
		}
		h.raw(`<div id="board"`)
		h.attr("class", "board state-"+string(state))
		h.attr("data-state", string(state))
		if state == domain.StateLoading {
			h.raw(` hx-get="/board" hx-trigger="load" hx-swap="outerHTML"`)
		}
		h.raw(">")

		switch state {
		case domain.StateLoading:
			h.render(ctx, Loading())
		case domain.StateError:
			h.render(ctx, ErrorState(b.Message))
		case domain.StateEmpty:
			h.render(ctx, EmptyState())
		default:
			h.render(ctx, Groups(opts, b.Groups))
		}

		h.raw("</div>")
	})
}

// Loading is shown while the first fetch is in flight.
func Loading() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="loading" aria-busy="true">Loading…</div>`)
	})
}

// EmptyState replaces the list when there are no records.
func EmptyState() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div id="emptyState" class="empty">`)
		h.text(domain.EmptyMessage)
		h.raw("</div>")
	})
}

// ErrorState replaces the list when the read failed and offers a retry.
func ErrorState(message string) templ.Component {
	if message == "" {
		message = "Could not load assignments."
	}
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="error" role="alert"><span>`)
		h.text(message)
		h.raw(`</span> <a class="retry" href="/" hx-get="/board" hx-target="#board" hx-swap="outerHTML">Retry</a></div>`)
	})
}

// Groups renders a heading per label followed by its cards, in the given order.
func Groups(opts Options, groups []domain.Group) templ.Component {
	opts = opts.withDefaults()
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div id="list">`)
		for _, group := range groups {
			h.raw(`<div class="meta group-label">`)
			h.text(group.Label)
			h.raw("</div>")
			for _, assignment := range group.Assignments {
				h.render(ctx, Card(opts, assignment))
			}
		}
		h.raw("</div>")
	})
}

// Card renders one record: completion checkbox, title, edit and delete
// controls, and a meta row with the optional course badge, due date and
// priority badge. Notes get their own line when present.
func Card(opts Options, a domain.Assignment) templ.Component {
	opts = opts.withDefaults()
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="card"`)
		h.attr("id", cardID(a.ID))
		h.attr("data-id", a.ID.String())
		h.raw(">")

		h.raw(`<div class="card-head"><div class="row">`)
		h.raw(`<form class="toggle" method="post"`)
		h.attr("action", CompletionPath(a.ID))
		h.raw(">")
		h.render(ctx, Checkbox(a.ID, a.Completed, false))
		h.raw(`<noscript><button type="submit">Save</button></noscript></form>`)
		h.raw(`<div class="title">`)
		h.text(a.Title)
		h.raw("</div></div>")

		h.raw(`<div class="actions"><a class="btn-icon edit"`)
		h.attr("href", EditPath(a.ID))
		h.raw(">Edit</a>")
		h.raw(`<a class="btn-icon delete"`)
		h.attr("href", DeletePath(a.ID))
		h.attr("hx-post", DeletePath(a.ID))
		h.raw(` hx-vals='{"confirm":"yes"}'`)
		h.attr("hx-confirm", deleteConfirmText)
		h.raw(` hx-target="#board" hx-swap="outerHTML"`)
		if opts.DeleteStyle == DeleteIcon {
			h.raw(` aria-label="Delete">&#128465;</a>`)
		} else {
			h.raw(">Del</a>")
		}
		h.raw("</div></div>")

		h.raw(`<div class="meta">`)
		if a.HasCourse() {
			h.raw(`<span class="badge course">`)
			h.text(a.Course)
			h.raw("</span>")
		}
		h.raw(`<span class="due">`)
		h.text(board.DueText(a, opts.DateLayout))
		h.raw("</span>")
		h.raw(`<span class="badge priority">`)
		h.text(a.PriorityBadge())
		h.raw("</span></div>")

		if a.HasNotes() {
			h.raw(`<div class="notes">`)
			h.text(a.Notes)
			h.raw("</div>")
		}

		h.raw("</div>")
	})
}

// Checkbox is the completion control of a card. With oob set it replaces the
// rendered checkbox out of band, which is how a failed update puts back the
// stored value without touching the rest of the board.
func Checkbox(id domain.AssignmentID, completed, oob bool) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<input type="checkbox" name="completed" value="true"`)
		h.attr("id", checkboxID(id))
		if completed {
			h.raw(" checked")
		}
		if oob {
			h.raw(` hx-swap-oob="true"`)
		}
		h.attr("hx-post", CompletionPath(id))
		h.raw(` hx-trigger="change" hx-swap="none">`)
	})
}

// Notices renders transient notifications. With oob set the fragment replaces
// #notices out of band, next to whatever the response swaps in.
func Notices(notices []domain.Notice, oob bool) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div id="notices" aria-live="polite"`)
		if oob {
			h.raw(` hx-swap-oob="true"`)
		}
		h.raw(">")
		for _, notice := range notices {
			h.raw(`<div role="status"`)
			h.attr("class", "notice notice-"+string(notice.Kind))
			if notice.Code != "" {
				h.attr("data-code", string(notice.Code))
			}
			h.raw(">")
			h.text(notice.Message)
			h.raw("</div>")
		}
		h.raw("</div>")
	})
}
