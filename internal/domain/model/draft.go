package model

import "time"

// SchedulingContext carries the user's scheduling choices for a quote.
type SchedulingContext struct {
	StartDate *time.Time
	StartTime string // "HH:MM", empty when not chosen yet
	Persons   int
}

// OrderDraft is an in-progress, unpersisted order assembled in the booking
// form. Drafts exist only between opening the form and submit or cancel.
type OrderDraft struct {
	Course    *Course
	Tutor     *Tutor
	StartDate *time.Time
	StartTime string
	Persons   int
	Flags     OptionFlags
	Price     int64
}

// Scheduling returns the scheduling context of the draft.
func (d OrderDraft) Scheduling() SchedulingContext {
	return SchedulingContext{StartDate: d.StartDate, StartTime: d.StartTime, Persons: d.Persons}
}
