package apperror

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports every missing and invalid field of a submission
// step at once, so the client can highlight all of them in a single pass.
type ValidationError struct {
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
	InvalidFields []string `json:"invalidFields,omitempty"`
}

func NewFieldsValidationErr(missing, invalid []string) *ValidationError {
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing fields: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid fields: %s", strings.Join(invalid, ", ")))
	}

	return &ValidationError{
		Message:       strings.Join(parts, "; "),
		MissingFields: missing,
		InvalidFields: invalid,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}
