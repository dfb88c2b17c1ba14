package response

const (
	// MessageSuccess is the message body for successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal failures from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for 500 responses.
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
