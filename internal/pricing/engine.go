// Package pricing computes order prices for course bookings.
//
// There are two formula variants. The booking form combines the weekend
// multiplier and the time-of-day surcharge before multiplying by the number
// of persons; the cabinet's edit dialog applies the weekend multiplier to the
// already person-multiplied base and has no time-of-day surcharge at all.
// Both orderings are independently reachable user flows with independently
// stored results, so they are kept as separate functions on purpose.
package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

const (
	morningSurcharge       = 400  // start hour in [9, 12)
	eveningSurcharge       = 1000 // start hour in [18, 20)
	supplementaryPerPerson = 2000
	personalizedPerWeek    = 1500
	assessmentFee          = 300

	// GroupMinPersons is the group size at which the group discount kicks in.
	GroupMinPersons = 5
)

var (
	weekendRate     = decimal.NewFromFloat(1.5)
	intensiveRate   = decimal.NewFromFloat(1.2)
	excursionsRate  = decimal.NewFromFloat(1.25)
	interactiveRate = decimal.NewFromFloat(1.5)
	earlyRate       = decimal.NewFromFloat(0.9)
	groupRate       = decimal.NewFromFloat(0.85)
)

// QuoteNewOrder prices a draft in the booking form. The flat time-of-day
// surcharge is added before the persons multiplication, and the group
// discount triggers on the flag or on persons alone.
//
// A nil course yields 0 rather than an error.
func QuoteNewOrder(course *model.Course, sched model.SchedulingContext, flags model.OptionFlags) int64 {
	if course == nil {
		return 0
	}

	persons := personsOrOne(sched.Persons)
	total := baseFee(course)

	if isWeekend(sched.StartDate) {
		total = total.Mul(weekendRate)
	}
	total = total.Add(decimal.NewFromInt(timeSurcharge(sched.StartTime)))
	total = total.Mul(decimal.NewFromInt(int64(persons)))

	total = applyOptions(total, course, persons, flags)

	if flags.EarlyRegistration {
		total = total.Mul(earlyRate)
	}
	if flags.GroupEnrollment || persons >= GroupMinPersons {
		total = total.Mul(groupRate)
	}

	return total.Round(0).IntPart()
}

// QuoteOrderEdit prices an existing order in the cabinet's edit dialog.
// The stored start time is ignored and the discounts come from the
// user-settable flags only.
//
// A nil course yields 0 rather than an error.
func QuoteOrderEdit(course *model.Course, sched model.SchedulingContext, flags model.OptionFlags) int64 {
	if course == nil {
		return 0
	}

	persons := personsOrOne(sched.Persons)
	total := baseFee(course).Mul(decimal.NewFromInt(int64(persons)))

	if isWeekend(sched.StartDate) {
		total = total.Mul(weekendRate)
	}

	total = applyOptions(total, course, persons, flags)

	if flags.EarlyRegistration {
		total = total.Mul(earlyRate)
	}
	if flags.GroupEnrollment {
		total = total.Mul(groupRate)
	}

	return total.Round(0).IntPart()
}

// EarlyRegistration reports whether a booking counts as early: the start is
// at least one calendar month ahead by month difference, not elapsed days.
func EarlyRegistration(start, today time.Time) bool {
	months := (start.Year()*12 + int(start.Month())) - (today.Year()*12 + int(today.Month()))
	return months >= 1
}

// GroupEnrollment reports whether the group discount applies at quote time.
func GroupEnrollment(persons int) bool {
	return persons >= GroupMinPersons
}

// DeriveFlags fills the derived flags of a new-order submission from the
// chosen options: early registration from the start date, group enrollment
// from the group size, intensive from the course's weekly load.
func DeriveFlags(course *model.Course, sched model.SchedulingContext, chosen model.OptionFlags, today time.Time) model.OptionFlags {
	flags := chosen
	flags.EarlyRegistration = sched.StartDate != nil && EarlyRegistration(*sched.StartDate, today)
	flags.GroupEnrollment = GroupEnrollment(personsOrOne(sched.Persons))
	flags.IntensiveCourse = course != nil && course.Intensive()
	return flags
}

func baseFee(course *model.Course) decimal.Decimal {
	return decimal.NewFromInt(course.FeePerHour).
		Mul(decimal.NewFromInt(int64(course.TotalLength))).
		Mul(decimal.NewFromInt(int64(course.WeekLength)))
}

// applyOptions applies the common middle of both formulas: the intensive
// multiplier, the additive options, then the multiplicative options.
func applyOptions(total decimal.Decimal, course *model.Course, persons int, flags model.OptionFlags) decimal.Decimal {
	if course.Intensive() {
		total = total.Mul(intensiveRate)
	}

	if flags.Supplementary {
		total = total.Add(decimal.NewFromInt(supplementaryPerPerson * int64(persons)))
	}
	if flags.Personalized {
		total = total.Add(decimal.NewFromInt(personalizedPerWeek * int64(course.TotalLength)))
	}
	if flags.Assessment {
		total = total.Add(decimal.NewFromInt(assessmentFee))
	}

	if flags.Excursions {
		total = total.Mul(excursionsRate)
	}
	if flags.Interactive {
		total = total.Mul(interactiveRate)
	}
	return total
}

func isWeekend(date *time.Time) bool {
	if date == nil {
		return false
	}
	day := date.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// timeSurcharge returns the flat surcharge for the "HH:MM" start time.
func timeSurcharge(startTime string) int64 {
	hour, ok := startHour(startTime)
	if !ok {
		return 0
	}
	switch {
	case hour >= 9 && hour < 12:
		return morningSurcharge
	case hour >= 18 && hour < 20:
		return eveningSurcharge
	default:
		return 0
	}
}

func startHour(startTime string) (int, bool) {
	raw, _, found := strings.Cut(startTime, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return hour, true
}

func personsOrOne(persons int) int {
	if persons < 1 {
		return 1
	}
	return persons
}
