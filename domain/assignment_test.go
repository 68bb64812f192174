package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AssignmentID
	}{
		{name: "number", in: `{"id":42}`, want: "42"},
		{name: "string", in: `{"id":"665f1c2ab3"}`, want: "665f1c2ab3"},
		{name: "null", in: `{"id":null}`, want: ""},
		{name: "missing", in: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Assignment
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a.ID)
		})
	}
}

func TestAssignmentIDUnmarshalRejectsObjects(t *testing.T) {
	var a Assignment
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"$oid":"x"}}`), &a))
}

func TestEffectivePriority(t *testing.T) {
	one, zero, three, negative := 1, 0, 3, -1
	tests := []struct {
		name     string
		priority *int
		want     string
	}{
		{name: "absent", priority: nil, want: "P2"},
		{name: "zero", priority: &zero, want: "P2"},
		{name: "negative", priority: &negative, want: "P2"},
		{name: "one", priority: &one, want: "P1"},
		{name: "three", priority: &three, want: "P3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assignment{Priority: tt.priority}
			assert.Equal(t, tt.want, a.PriorityBadge())
		})
	}
}

func TestAssignmentLenientNumbers(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		priority *int
		estimate *int
	}{
		{name: "numbers", in: `{"priority":1,"estimated_time":90}`, priority: intPtr(1), estimate: intPtr(90)},
		{name: "numeric strings", in: `{"priority":"1","estimated_time":" 45 "}`, priority: intPtr(1), estimate: intPtr(45)},
		{name: "floats", in: `{"priority":3.0}`, priority: intPtr(3)},
		{name: "garbage", in: `{"priority":"high","estimated_time":{"h":1}}`},
		{name: "null", in: `{"priority":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Assignment
			require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Essay",`+tt.in[1:]), &a))
			assert.Equal(t, AssignmentID("7"), a.ID)
			assert.Equal(t, "Essay", a.Title)
			assert.Equal(t, tt.priority, a.Priority)
			assert.Equal(t, tt.estimate, a.EstimatedTime)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestAssignmentDue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{name: "date", raw: "2024-05-10", want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "datetime", raw: "2024-05-10T23:00:00Z", want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "empty", raw: ""},
		{name: "garbage", raw: "next tuesday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Assignment{DueDate: tt.raw}.Due()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestCompletionPatchMarshal(t *testing.T) {
	body, err := json.Marshal(CompletionPatch(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":false}`, string(body))
}

func TestNoticeFromError(t *testing.T) {
	err := WrapError(ErrCodeDeleteFailed, "failed to delete assignment", ErrAssignmentNotFound)
	notice := NoticeFromError(err)
	assert.Equal(t, NoticeError, notice.Kind)
	assert.Equal(t, ErrCodeDeleteFailed, notice.Code)
	assert.NotEmpty(t, notice.Message)
	assert.True(t, IsDomainError(err, ErrCodeDeleteFailed))
	assert.Equal(t, ErrCodeInternal, CodeOf(assert.AnError))
}
