package usecase

import (
	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
)

const (
	minPersons = 1
	maxPersons = 20
)

// ValidateDraft checks a draft before submission. Checks run in a fixed
// order and the first failure wins.
func ValidateDraft(draft model.OrderDraft) error {
	if draft.Course == nil {
		return domainErrors.NewValidation(domainErrors.KindCourseNotSelected, "course is not selected")
	}
	if draft.StartDate == nil {
		return domainErrors.NewValidation(domainErrors.KindDateRequired, "start date is required")
	}
	if draft.StartTime == "" {
		return domainErrors.NewValidation(domainErrors.KindTimeRequired, "start time is required")
	}
	if draft.Persons < minPersons || draft.Persons > maxPersons {
		return domainErrors.NewValidation(domainErrors.KindPersonsOutOfRange, "persons must be between 1 and 20")
	}
	return nil
}

// OrderEdit carries the user's changes to an existing order. Early and group
// flags are plain checkboxes here, not derived values.
type OrderEdit struct {
	OrderID           int64
	CourseID          int64
	DateStart         string
	Persons           int
	EarlyRegistration bool
	GroupEnrollment   bool
}

// ValidateEdit checks an edit against the loaded catalog and order list.
// Same ordering discipline as ValidateDraft; the catalog and order lookups
// come last. The edit dialog has no time field, so no time check here.
func ValidateEdit(edit OrderEdit, courses map[int64]model.Course, orders map[int64]model.Order) error {
	if edit.CourseID == 0 {
		return domainErrors.NewValidation(domainErrors.KindCourseNotSelected, "course is not selected")
	}
	if edit.DateStart == "" {
		return domainErrors.NewValidation(domainErrors.KindDateRequired, "start date is required")
	}
	if edit.Persons < minPersons || edit.Persons > maxPersons {
		return domainErrors.NewValidation(domainErrors.KindPersonsOutOfRange, "persons must be between 1 and 20")
	}
	if _, ok := courses[edit.CourseID]; !ok {
		return domainErrors.NewValidation(domainErrors.KindCourseNotFound, "course not found")
	}
	if _, ok := orders[edit.OrderID]; !ok {
		return domainErrors.NewValidation(domainErrors.KindOrderNotFound, "order not found")
	}
	return nil
}
