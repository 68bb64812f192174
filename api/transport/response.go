package transport

// Envelope wraps every JSON response of the board API.
type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// ErrorBody carries the domain error code next to a readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta describes a bounded listing.
type ListMeta struct {
	Count int `json:"count"`
	Limit int `json:"limit"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Data: data, Meta: meta}
}

// NewError builds an error envelope; meta is optional context such as a health report.
func NewError(code, message string, meta interface{}) Envelope {
	return Envelope{
		Status: StatusError,
		Error:  &ErrorBody{Code: code, Message: message},
		Meta:   meta,
	}
}
