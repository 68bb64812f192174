package view

import (
	"context"

	"github.com/a-h/templ"

	"github.com/fastygo/assignment-board/domain"
)

const htmxScript = "https://unpkg.com/htmx.org@1.9.12"

const stylesheet = `body{font-family:system-ui,sans-serif;margin:0;background:#f6f6f8}
header{display:flex;gap:1rem;align-items:center;padding:1rem 1.5rem;background:#fff;border-bottom:1px solid #ddd}
header h1{font-size:1.25rem;margin:0;flex:1}
main{max-width:42rem;margin:1.5rem auto;padding:0 1rem}
.card{background:#fff;border-radius:8px;padding:.75rem 1rem;margin:.5rem 0;box-shadow:0 1px 2px rgba(0,0,0,.08)}
.card-head,.row{display:flex;align-items:center;justify-content:space-between;gap:.5rem}
.meta{display:flex;gap:.5rem;font-size:13px;color:#555;margin-top:.25rem}
.group-label{margin-top:1.25rem;font-weight:600}
.badge{background:#eef;border-radius:4px;padding:0 .35rem}
.notes{font-size:13px;opacity:.9}
.empty,.error,.loading{text-align:center;padding:3rem 0;color:#666}
.notice{padding:.5rem 1rem;margin:.5rem 0;border-radius:6px;background:#eef}
.notice-error{background:#fde8e8}
.notice-success{background:#e6f6ea}
.btn-icon{margin-left:.5rem}`

// Layout wraps body in the full page shell.
func Layout(opts Options, notices []domain.Notice, body templ.Component) templ.Component {
	opts = opts.withDefaults()
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(opts.Title)
		h.raw("</title><style>")
		h.raw(stylesheet)
		h.raw(`</style><script defer`)
		h.attr("src", htmxScript)
		h.raw(`></script></head><body>`)

		h.raw("<header><h1>")
		h.text(opts.Title)
		h.raw(`</h1><a id="addBtn" class="btn"`)
		h.attr("href", opts.AddURL)
		h.raw(`>Add</a><a class="btn"`)
		h.attr("href", opts.HelpURL)
		h.raw(`>Help</a><a class="btn" href="/" hx-get="/board" hx-target="#board" hx-swap="outerHTML">Refresh</a></header>`)

		h.raw(`<main id="app">`)
		h.render(ctx, Notices(notices, false))
		h.render(ctx, body)
		h.raw("</main></body></html>")
	})
}

// ConfirmDelete asks for confirmation when the browser runs without htmx.
func ConfirmDelete(id domain.AssignmentID) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="confirm"><p>`)
		h.text(deleteConfirmText)
		h.raw(`</p><form method="post"`)
		h.attr("action", DeletePath(id))
		h.raw(`><input type="hidden" name="confirm" value="yes"><button type="submit">Delete</button> <a href="/">Cancel</a></form></div>`)
	})
}

// NotImplemented tells the user a control has no flow behind it yet.
func NotImplemented(feature string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="not-implemented" role="status" data-code="`)
		h.text(string(domain.ErrCodeNotImplemented))
		h.raw(`"><p>`)
		h.text(feature)
		h.raw(` is not available yet.</p><a href="/">Back to assignments</a></div>`)
	})
}

// Help explains the board controls.
func Help() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="help"><h2>Using the board</h2><ul>`)
		h.raw(`<li>Assignments are grouped under their due date, in the order the service returns them.</li>`)
		h.raw(`<li>Tick the checkbox to mark an assignment complete; untick it to reopen it.</li>`)
		h.raw(`<li>Del removes an assignment after you confirm.</li>`)
		h.raw(`<li>Refresh reloads the list from the service.</li>`)
		h.raw(`</ul><a href="/">Back to assignments</a></div>`)
	})
}
