package domain

// ViewState is the rendering mode of the board.
type ViewState string

const (
	StateLoading   ViewState = "loading"
	StateError     ViewState = "error"
	StateEmpty     ViewState = "empty"
	StatePopulated ViewState = "populated"
)

// EmptyMessage is shown when the service returns no records.
const EmptyMessage = "No Current Assignments"

// UnknownLabel groups records whose due date cannot be parsed.
const UnknownLabel = "Unknown"

// Group is a run of records sharing a due-date label.
type Group struct {
	Label       string       `json:"label"`
	Assignments []Assignment `json:"assignments"`
}

// Board is everything a single render needs.
type Board struct {
	State   ViewState `json:"state"`
	Groups  []Group   `json:"groups,omitempty"`
	Total   int       `json:"total"`
	Message string    `json:"message,omitempty"`
	Notices []Notice  `json:"notices,omitempty"`
	Err     *Error    `json:"-"`
}

// NoticeKind classifies a transient notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient, non-fatal notification shown once.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Code    ErrorCode  `json:"code,omitempty"`
	Message string     `json:"message"`
}

// NoticeFromError converts a failure into an error notice.
func NoticeFromError(err error) Notice {
	return Notice{
		Kind:    NoticeError,
		Code:    CodeOf(err),
		Message: userMessage(err),
	}
}

func userMessage(err error) string {
	switch CodeOf(err) {
	case ErrCodeFetchFailed:
		return "Could not load assignments."
	case ErrCodeUpdateFailed:
		return "Could not update the assignment. Your change was not saved."
	case ErrCodeDeleteFailed:
		return "Could not delete the assignment."
	case ErrCodeNotImplemented:
		return "This feature is not available yet."
	default:
		return "Something went wrong."
	}
}
