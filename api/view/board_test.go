package view

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/usecase/board"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestBoardEndToEnd(t *testing.T) {
	var records []domain.Assignment
	payload := `[{"id":1,"title":"Essay","due_date":"2024-05-10","completed":false,"course":"ENG101","priority":1}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &records))

	uc := board.New(nil, nil, nil, "")
	html := render(t, Board(Options{}, uc.Build(records)))

	assert.Equal(t, 1, strings.Count(html, `class="meta group-label"`))
	assert.Contains(t, html, `<div class="meta group-label">Fri, May 10</div>`)
	assert.Equal(t, 1, strings.Count(html, `class="card"`))
	assert.Contains(t, html, `<div class="title">Essay</div>`)
	assert.Contains(t, html, `<span class="badge course">ENG101</span>`)
	assert.Contains(t, html, `<span class="due">5/10/2024</span>`)
	assert.Contains(t, html, `<span class="badge priority">P1</span>`)
	assert.Contains(t, html, `data-state="populated"`)
}

func TestCardDefaultsAndOptionalParts(t *testing.T) {
	bare := render(t, Card(Options{}, domain.Assignment{ID: "9", Title: "Lab", DueDate: "2024-05-11"}))
	assert.Contains(t, bare, `<span class="badge priority">P2</span>`)
	assert.NotContains(t, bare, "badge course")
	assert.NotContains(t, bare, `class="notes"`)
	assert.NotContains(t, bare, " checked")

	full := render(t, Card(Options{}, domain.Assignment{
		ID: "9", Title: "Lab", DueDate: "2024-05-11", Completed: true, Notes: "bring goggles",
	}))
	assert.Contains(t, full, `<div class="notes">bring goggles</div>`)
	assert.Contains(t, full, " checked")
}

func TestCardControls(t *testing.T) {
	html := render(t, Card(Options{}, domain.Assignment{ID: "42", Title: "Quiz", DueDate: "2024-05-11"}))
	assert.Contains(t, html, `hx-post="/assignments/42/completion"`)
	assert.Contains(t, html, `hx-post="/assignments/42/delete"`)
	assert.Contains(t, html, `hx-confirm="Delete this assignment?"`)
	assert.Contains(t, html, `href="/assignments/42/edit"`)
	assert.Contains(t, html, ">Del</a>")

	icon := render(t, Card(Options{DeleteStyle: DeleteIcon}, domain.Assignment{ID: "42", Title: "Quiz"}))
	assert.Contains(t, icon, `aria-label="Delete"`)
	assert.NotContains(t, icon, ">Del</a>")
}

func TestCheckboxOutOfBand(t *testing.T) {
	inline := render(t, Checkbox("42", false, false))
	assert.Contains(t, inline, `id="check-42"`)
	assert.NotContains(t, inline, "hx-swap-oob")
	assert.NotContains(t, inline, " checked")

	oob := render(t, Checkbox("42", true, true))
	assert.Contains(t, oob, `id="check-42" checked hx-swap-oob="true"`)
	assert.Contains(t, oob, `hx-post="/assignments/42/completion"`)

	card := render(t, Card(Options{}, domain.Assignment{ID: "42", Title: "Quiz", Completed: true}))
	assert.Contains(t, card, `id="check-42" checked`)
}

func TestCardEscapesText(t *testing.T) {
	html := render(t, Card(Options{}, domain.Assignment{ID: "1", Title: `<script>alert("x")</script>`}))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBoardEmptyState(t *testing.T) {
	html := render(t, Board(Options{}, domain.Board{State: domain.StateEmpty, Message: domain.EmptyMessage}))
	assert.Contains(t, html, domain.EmptyMessage)
	assert.Contains(t, html, `id="emptyState"`)
	assert.NotContains(t, html, `class="card"`)
	assert.NotContains(t, html, `id="list"`)
}

func TestBoardErrorStateOffersRetry(t *testing.T) {
	html := render(t, Board(Options{}, domain.Board{State: domain.StateError, Message: "Could not load assignments."}))
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Could not load assignments.")
	assert.Contains(t, html, ">Retry</a>")
	assert.NotContains(t, html, `class="card"`)
}

func TestBoardLoadingStateFetchesFragment(t *testing.T) {
	html := render(t, Board(Options{}, domain.Board{}))
	assert.Contains(t, html, `data-state="loading"`)
	assert.Contains(t, html, `hx-get="/board" hx-trigger="load"`)
}

func TestGroupsRenderInGivenOrder(t *testing.T) {
	html := render(t, Groups(Options{}, []domain.Group{
		{Label: "Sun, May 12", Assignments: []domain.Assignment{{ID: "1", Title: "A"}}},
		{Label: "Fri, May 10", Assignments: []domain.Assignment{{ID: "2", Title: "B"}}},
	}))
	assert.Less(t, strings.Index(html, "Sun, May 12"), strings.Index(html, "Fri, May 10"))
	assert.Less(t, strings.Index(html, ">A<"), strings.Index(html, "Fri, May 10"))
}

func TestNotices(t *testing.T) {
	notices := []domain.Notice{{Kind: domain.NoticeError, Code: domain.ErrCodeDeleteFailed, Message: "Could not delete the assignment."}}

	inline := render(t, Notices(notices, false))
	assert.Contains(t, inline, `class="notice notice-error"`)
	assert.Contains(t, inline, `data-code="DELETE_FAILED"`)
	assert.NotContains(t, inline, "hx-swap-oob")

	oob := render(t, Notices(notices, true))
	assert.Contains(t, oob, `hx-swap-oob="true"`)
}

func TestLayoutWrapsBody(t *testing.T) {
	html := render(t, Layout(Options{Title: "Homework", AddURL: "/new"}, nil, EmptyState()))
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Homework</title>")
	assert.Contains(t, html, `href="/new"`)
	assert.Contains(t, html, domain.EmptyMessage)
}

func TestPlaceholderPages(t *testing.T) {
	assert.Contains(t, render(t, NotImplemented("Editing assignments")), "Editing assignments is not available yet.")
	assert.Contains(t, render(t, ConfirmDelete("7")), `action="/assignments/7/delete"`)
	assert.Contains(t, render(t, Help()), "Using the board")
}
