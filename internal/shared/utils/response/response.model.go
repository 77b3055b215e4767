package response

// StandardApiResponse is the envelope every endpoint returns. Data and
// Errors are mutually exclusive in practice: success responses carry the
// payload, error responses carry the detail string or validation map.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // mirrors the HTTP status
	Message    string      `json:"message"`          // human-readable summary
	Data       interface{} `json:"data,omitempty"`   // payload for success
	Errors     interface{} `json:"errors,omitempty"` // error detail or validation failures
}
