package api

// ErrorResponse is the body the server sends along with a >= 400 status.
// Depending on the route either "error" or "message" carries the text.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorResponse) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// SuccessResponse is the body of acknowledgement-only routes such as login.
type SuccessResponse struct {
	Success string `json:"success,omitempty"`
}
