package app

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// BookingFacade aggregates catalog access and the order lifecycle behind one
// surface consumed by the CLI and the watch-mode refresher.
type BookingFacade struct {
	catalog repository.Catalog
	orders  repository.Orders
	booking *usecase.BookingUseCase
}

// NewBookingFacade constructs BookingFacade.
func NewBookingFacade(catalog repository.Catalog, orders repository.Orders, booking *usecase.BookingUseCase) *BookingFacade {
	return &BookingFacade{catalog: catalog, orders: orders, booking: booking}
}

// Courses loads the course catalog.
func (f *BookingFacade) Courses(ctx context.Context) ([]model.Course, error) {
	return f.catalog.Courses(ctx)
}

// Tutors loads the tutor directory.
func (f *BookingFacade) Tutors(ctx context.Context) ([]model.Tutor, error) {
	return f.catalog.Tutors(ctx)
}

// Orders loads the current order list.
func (f *BookingFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// Quote prices a draft without submitting it.
func (f *BookingFacade) Quote(draft model.OrderDraft) int64 {
	return f.booking.Quote(draft)
}

// PlaceOrder validates and submits a draft.
func (f *BookingFacade) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return f.booking.Place(ctx, draft)
}

// EditOrder loads the catalog and order list, then validates, reprices and
// submits the change.
func (f *BookingFacade) EditOrder(ctx context.Context, edit usecase.OrderEdit) (*model.Order, error) {
	courses, err := f.catalog.Courses(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := f.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.booking.Edit(ctx, edit, courses, orders)
}

// DeleteOrder removes an order after a local existence check.
func (f *BookingFacade) DeleteOrder(ctx context.Context, id int64) error {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return err
	}
	return f.booking.Remove(ctx, id, orders)
}

// Cabinet loads everything the personal cabinet renders.
func (f *BookingFacade) Cabinet(ctx context.Context, page, perPage int) (usecase.CabinetState, error) {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return usecase.CabinetState{}, err
	}
	courses, err := f.catalog.Courses(ctx)
	if err != nil {
		return usecase.CabinetState{}, err
	}
	return usecase.CabinetState{Orders: orders, Courses: courses, Page: page, PerPage: perPage}, nil
}
