package errors

const (
	HttpInternalError     = "internal_error"
	HttpInvalidJsonError  = "invalid_json"
	HttpInvalidBatchError = "invalid_batch"
	HttpPayloadTooLarge   = "payload_too_large"
	HttpNoDataError       = "no_data"
)

// ErrorResponse is the JSON error body shared by every endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
