package restclient

import "fmt"

// ServerError is returned when the backend answers with a non-2xx status.
// Message carries the server's own message verbatim when the error body had
// one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
