package apperror

import "encoding/json"

// RemoteError carries a backend-side rejection verbatim. It is never
// interpreted locally; the message is surfaced to the caller as-is.
type RemoteError struct {
	Message string `json:"message"`
}

func NewRemoteError(message string) *RemoteError {
	return &RemoteError{
		Message: message,
	}
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}
