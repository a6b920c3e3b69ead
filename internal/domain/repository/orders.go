package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// Orders describes operations on persisted bookings. The backend owns the
// records; writes return the stored state, which replaces any local copy.
type Orders interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Update(ctx context.Context, id int64, order model.Order) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
