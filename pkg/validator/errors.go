package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed is matched by every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")

// FieldError describes one rejected field. Field is the dotted JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ValidationErrors is the list of field failures for one struct.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(field string) bool {
	for _, fe := range ve {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, fe := range ve {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	seen := make(map[string]struct{}, len(ve))
	for _, fe := range ve {
		if _, ok := seen[fe.Field]; !ok {
			seen[fe.Field] = struct{}{}
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
