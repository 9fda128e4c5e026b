package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ConflictResp is the body written for 409 responses that carry the colliding records.
type ConflictResp struct {
	Error     string `json:"error"`
	Conflicts any    `json:"conflicts"`
}
