package errors

import "fmt"

// ValidationKind identifies which draft check failed.
type ValidationKind string

const (
	KindCourseNotSelected ValidationKind = "course_not_selected"
	KindDateRequired      ValidationKind = "date_required"
	KindTimeRequired      ValidationKind = "time_required"
	KindPersonsOutOfRange ValidationKind = "persons_out_of_range"
	KindCourseNotFound    ValidationKind = "course_not_found"
	KindOrderNotFound     ValidationKind = "order_not_found"
)

// ValidationError reports the first failed check of an order draft.
// Validation is pure; the caller decides how to surface the kind to the user.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidation constructs a ValidationError for the given kind.
func NewValidation(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}
