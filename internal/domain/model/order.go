package model

// OptionFlags is the set of booking options attached to an order.
//
// EarlyRegistration and GroupEnrollment are derived automatically when a new
// order is submitted, but remain user-settable checkboxes when editing an
// existing order.
type OptionFlags struct {
	Supplementary     bool
	Personalized      bool
	Excursions        bool
	Assessment        bool
	Interactive       bool
	EarlyRegistration bool
	GroupEnrollment   bool
	IntensiveCourse   bool
}

// Order describes a persisted booking owned by the backend. The client never
// mutates it locally, only by refetching after a successful write.
type Order struct {
	ID        int64
	CourseID  int64
	TutorID   int64 // 0 when no tutor was picked
	DateStart string
	TimeStart string
	Persons   int
	Price     int64
	Duration  int // hours
	Flags     OptionFlags
}
