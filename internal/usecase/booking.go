package usecase

import (
	"context"
	"time"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/pricing"
)

// BookingUseCase drives the order lifecycle: quoting drafts, submitting
// them, repricing and updating existing orders, deleting.
//
// The stored price is never trusted on writes: every create and update
// recomputes it from the current fields first.
type BookingUseCase struct {
	orders repository.Orders
	now    func() time.Time
}

// NewBookingUseCase constructs BookingUseCase on the real clock.
func NewBookingUseCase(orders repository.Orders) *BookingUseCase {
	return &BookingUseCase{orders: orders, now: time.Now}
}

// Quote prices a draft with the booking-form formula, deriving the automatic
// flags from the current date.
func (u *BookingUseCase) Quote(draft model.OrderDraft) int64 {
	sched := draft.Scheduling()
	flags := pricing.DeriveFlags(draft.Course, sched, draft.Flags, u.now())
	return pricing.QuoteNewOrder(draft.Course, sched, flags)
}

// Place validates the draft, derives the automatic flags, prices it and
// submits it. Returns the stored order.
func (u *BookingUseCase) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	sched := draft.Scheduling()
	flags := pricing.DeriveFlags(draft.Course, sched, draft.Flags, u.now())
	price := pricing.QuoteNewOrder(draft.Course, sched, flags)

	order := model.Order{
		CourseID:  draft.Course.ID,
		DateStart: draft.StartDate.Format("2006-01-02"),
		TimeStart: draft.StartTime,
		Persons:   draft.Persons,
		Price:     price,
		Duration:  draft.Course.DurationHours(),
		Flags:     flags,
	}
	if draft.Tutor != nil {
		order.TutorID = draft.Tutor.ID
	}

	return u.orders.Create(ctx, order)
}

// Reprice computes the new price of an edited order with the edit-flow
// formula: stored option flags plus the user-set early/group checkboxes,
// stored start time ignored.
func (u *BookingUseCase) Reprice(course *model.Course, stored model.Order, edit OrderEdit) int64 {
	flags := stored.Flags
	flags.EarlyRegistration = edit.EarlyRegistration
	flags.GroupEnrollment = edit.GroupEnrollment

	sched := model.SchedulingContext{Persons: edit.Persons}
	if day, ok := parseDay(edit.DateStart); ok {
		sched.StartDate = &day
	}
	return pricing.QuoteOrderEdit(course, sched, flags)
}

// Edit validates the change against the loaded catalog and orders, recomputes
// the price and pushes the update. Lookup failures abort before any network
// call.
func (u *BookingUseCase) Edit(ctx context.Context, edit OrderEdit, courses []model.Course, orders []model.Order) (*model.Order, error) {
	courseIndex := CourseIndex(courses)
	orderIndex := OrderIndex(orders)

	if err := ValidateEdit(edit, courseIndex, orderIndex); err != nil {
		return nil, err
	}

	course := courseIndex[edit.CourseID]
	stored := orderIndex[edit.OrderID]

	updated := stored
	updated.CourseID = edit.CourseID
	updated.DateStart = edit.DateStart
	updated.Persons = edit.Persons
	updated.Duration = course.DurationHours()
	updated.Flags.EarlyRegistration = edit.EarlyRegistration
	updated.Flags.GroupEnrollment = edit.GroupEnrollment
	updated.Flags.IntensiveCourse = course.Intensive()
	updated.Price = u.Reprice(&course, stored, edit)

	return u.orders.Update(ctx, edit.OrderID, updated)
}

// Remove deletes an order after checking it exists locally; a missing order
// aborts without contacting the backend.
func (u *BookingUseCase) Remove(ctx context.Context, id int64, orders []model.Order) error {
	if _, ok := OrderIndex(orders)[id]; !ok {
		return domainErrors.NewValidation(domainErrors.KindOrderNotFound, "order not found")
	}
	return u.orders.Delete(ctx, id)
}

// parseDay reads the date part of an ISO date or timestamp string.
func parseDay(raw string) (time.Time, bool) {
	if len(raw) > 10 {
		raw = raw[:10]
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
