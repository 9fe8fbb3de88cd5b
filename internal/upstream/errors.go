package upstream

import "fmt"

// StatusError is a transport-level failure: a non-2xx HTTP status or an
// unreadable response body. Message carries the backend's message when the
// error body was parseable JSON, else a generic status-coded message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// APIError is an application-level failure: HTTP 2xx with success:false.
// Message is taken from the payload, with a per-operation fallback.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// genericHTTPError builds the fallback message for a non-2xx status whose
// body carried no usable message.
func genericHTTPError(statusCode int) string {
	return fmt.Sprintf("HTTP error! status: %d", statusCode)
}
