package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrTutorNotFound  = errors.New("tutor not found")
)
