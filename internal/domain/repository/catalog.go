package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// Catalog describes read access to the course catalog and tutor directory.
type Catalog interface {
	Courses(ctx context.Context) ([]model.Course, error)
	Tutors(ctx context.Context) ([]model.Tutor, error)
}
