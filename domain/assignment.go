package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DefaultPriority applies to records that carry no priority.
const DefaultPriority = 2

// DueDateLayout is the wire format of Assignment.DueDate.
const DueDateLayout = "2006-01-02"

// AssignmentID is the opaque identifier issued by the assignments service.
// The service may encode it as a JSON string or number.
type AssignmentID string

func (id *AssignmentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AssignmentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = AssignmentID(n.String())
	return nil
}

func (id AssignmentID) String() string {
	return string(id)
}

// Assignment is a single record as returned by the assignments service.
type Assignment struct {
	ID            AssignmentID `json:"id"`
	Title         string       `json:"title"`
	DueDate       string       `json:"due_date"`
	Completed     bool         `json:"completed"`
	Course        string       `json:"course,omitempty"`
	Priority      *int         `json:"priority,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	EstimatedTime *int         `json:"estimated_time,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
}

// UnmarshalJSON reads the numeric fields leniently: numbers and numeric
// strings are accepted, anything else leaves the field unset.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	type plain Assignment
	aux := struct {
		*plain
		Priority      json.RawMessage `json:"priority"`
		EstimatedTime json.RawMessage `json:"estimated_time"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Priority = lenientInt(aux.Priority)
	a.EstimatedTime = lenientInt(aux.EstimatedTime)
	return nil
}

func lenientInt(raw json.RawMessage) *int {
	text := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if text == "" || text == "null" {
		return nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}

// EffectivePriority returns the priority to display. Missing and non-positive
// priorities fall back to DefaultPriority.
func (a Assignment) EffectivePriority() int {
	if a.Priority == nil || *a.Priority <= 0 {
		return DefaultPriority
	}
	return *a.Priority
}

// PriorityBadge renders the priority as shown on cards, e.g. "P1".
func (a Assignment) PriorityBadge() string {
	return "P" + strconv.Itoa(a.EffectivePriority())
}

// HasCourse reports whether a course badge should be shown.
func (a Assignment) HasCourse() bool {
	return strings.TrimSpace(a.Course) != ""
}

// HasNotes reports whether a notes line should be shown.
func (a Assignment) HasNotes() bool {
	return strings.TrimSpace(a.Notes) != ""
}

// Due parses the calendar due date. Datetime values are truncated to their date part.
func (a Assignment) Due() (time.Time, bool) {
	raw := strings.TrimSpace(a.DueDate)
	if len(raw) < len(DueDateLayout) {
		return time.Time{}, false
	}
	due, err := time.Parse(DueDateLayout, raw[:len(DueDateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// AssignmentPatch is a partial update. Nil fields are left untouched by the service.
type AssignmentPatch struct {
	Completed *bool `json:"completed,omitempty"`
}

// CompletionPatch builds the partial update used by the completion checkbox.
func CompletionPatch(completed bool) AssignmentPatch {
	return AssignmentPatch{Completed: &completed}
}
