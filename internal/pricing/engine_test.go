package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

var (
	saturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
)

func baseCourse() *model.Course {
	return &model.Course{
		ID:          1,
		Name:        "Spanish for travel",
		Level:       model.CourseLevelBeginner,
		FeePerHour:  1000,
		TotalLength: 4,
		WeekLength:  2,
	}
}

func sched(date *time.Time, startTime string, persons int) model.SchedulingContext {
	return model.SchedulingContext{StartDate: date, StartTime: startTime, Persons: persons}
}

func TestQuoteNewOrderBase(t *testing.T) {
	price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 1), model.OptionFlags{})
	assert.Equal(t, int64(8000), price)
}

func TestQuoteNewOrderWeekend(t *testing.T) {
	weekday := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 1), model.OptionFlags{})
	sat := QuoteNewOrder(baseCourse(), sched(&saturday, "", 1), model.OptionFlags{})
	sun := QuoteNewOrder(baseCourse(), sched(&sunday, "", 1), model.OptionFlags{})

	assert.Equal(t, int64(8000), weekday)
	assert.Equal(t, int64(12000), sat)
	assert.Equal(t, int64(12000), sun)
}

func TestQuoteNewOrderTimeSurcharge(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		want      int64
	}{
		{"morning start", "09:00", 8400},
		{"late morning boundary", "11:30", 8400},
		{"noon has no surcharge", "12:00", 8000},
		{"evening start", "18:00", 9000},
		{"evening boundary", "19:30", 9000},
		{"after evening window", "20:00", 8000},
		{"before morning window", "08:59", 8000},
		{"no time chosen", "", 8000},
		{"garbage time", "later", 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := QuoteNewOrder(baseCourse(), sched(&tuesday, tt.startTime, 1), model.OptionFlags{})
			assert.Equal(t, tt.want, price)
		})
	}
}

// The booking form adds the flat time surcharge before multiplying by
// persons; the edit dialog never applies it. The two variants must disagree
// on the same input here.
func TestQuoteVariantsDiverge(t *testing.T) {
	ctx := sched(&tuesday, "09:30", 3)

	newOrder := QuoteNewOrder(baseCourse(), ctx, model.OptionFlags{})
	edit := QuoteOrderEdit(baseCourse(), ctx, model.OptionFlags{})

	assert.Equal(t, int64(25200), newOrder) // (8000 + 400) * 3
	assert.Equal(t, int64(24000), edit)     // 8000 * 3, no surcharge
}

func TestIntensiveMultiplier(t *testing.T) {
	regular := baseCourse()
	regular.WeekLength = 4
	intensive := baseCourse()
	intensive.WeekLength = 5

	regularPrice := QuoteNewOrder(regular, sched(&tuesday, "", 1), model.OptionFlags{})
	intensivePrice := QuoteNewOrder(intensive, sched(&tuesday, "", 1), model.OptionFlags{})

	require.Equal(t, int64(16000), regularPrice)
	require.Equal(t, int64(24000), intensivePrice)

	// per-hour-normalized ratio is exactly 1.2
	assert.InDelta(t, 1.2, (float64(intensivePrice)/20)/(float64(regularPrice)/16), 1e-9)
}

func TestAdditiveOptions(t *testing.T) {
	tests := []struct {
		name  string
		flags model.OptionFlags
		want  int64
	}{
		{"supplementary scales with persons", model.OptionFlags{Supplementary: true}, 16000 + 2000*2},
		{"personalized scales with weeks", model.OptionFlags{Personalized: true}, 16000 + 1500*4},
		{"assessment is flat", model.OptionFlags{Assessment: true}, 16000 + 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 2), tt.flags)
			assert.Equal(t, tt.want, price)
		})
	}
}

func TestMultiplicativeOptions(t *testing.T) {
	price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 1), model.OptionFlags{Excursions: true, Interactive: true})
	assert.Equal(t, int64(15000), price) // 8000 * 1.25 * 1.5
}

func TestDiscounts(t *testing.T) {
	t.Run("group discount from persons alone", func(t *testing.T) {
		price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 5), model.OptionFlags{})
		assert.Equal(t, int64(34000), price) // 8000*5 * 0.85
	})

	t.Run("four persons pay full price", func(t *testing.T) {
		price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 4), model.OptionFlags{})
		assert.Equal(t, int64(32000), price)
	})

	t.Run("early and group stack", func(t *testing.T) {
		price := QuoteNewOrder(baseCourse(), sched(&tuesday, "", 5), model.OptionFlags{EarlyRegistration: true})
		assert.Equal(t, int64(30600), price) // 40000 * 0.9 * 0.85
	})

	t.Run("edit flow honors flags only", func(t *testing.T) {
		// five persons but the group checkbox is off
		price := QuoteOrderEdit(baseCourse(), sched(&tuesday, "", 5), model.OptionFlags{})
		assert.Equal(t, int64(40000), price)
	})
}

func TestRoundingHalfUp(t *testing.T) {
	course := &model.Course{FeePerHour: 2, TotalLength: 1, WeekLength: 1}
	price := QuoteNewOrder(course, sched(&tuesday, "", 1), model.OptionFlags{Excursions: true})
	assert.Equal(t, int64(3), price) // 2 * 1.25 = 2.5 rounds up
}

func TestNilCourseQuotesZero(t *testing.T) {
	assert.Zero(t, QuoteNewOrder(nil, sched(&tuesday, "10:00", 3), model.OptionFlags{Interactive: true}))
	assert.Zero(t, QuoteOrderEdit(nil, sched(&saturday, "", 2), model.OptionFlags{Excursions: true}))
}

func TestQuoteDeterministicAndNonNegative(t *testing.T) {
	flags := model.OptionFlags{
		Supplementary: true, Personalized: true, Excursions: true,
		Assessment: true, Interactive: true, EarlyRegistration: true, GroupEnrollment: true,
	}
	ctx := sched(&saturday, "18:00", 20)

	first := QuoteNewOrder(baseCourse(), ctx, flags)
	second := QuoteNewOrder(baseCourse(), ctx, flags)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int64(0))
}

func TestEarlyRegistration(t *testing.T) {
	today := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"next month, fewer than 31 days away", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), true},
		{"same month, one day ahead", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), false},
		{"several months ahead", time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), true},
		{"in the past", time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EarlyRegistration(tt.start, today))
		})
	}

	t.Run("year boundary", func(t *testing.T) {
		december := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
		january := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
		assert.True(t, EarlyRegistration(january, december))
	})
}

func TestDeriveFlags(t *testing.T) {
	course := baseCourse()
	course.WeekLength = 5
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)

	flags := DeriveFlags(course, sched(&start, "10:00", 5), model.OptionFlags{Supplementary: true}, today)

	assert.True(t, flags.Supplementary)
	assert.True(t, flags.EarlyRegistration)
	assert.True(t, flags.GroupEnrollment)
	assert.True(t, flags.IntensiveCourse)

	flags = DeriveFlags(course, sched(nil, "", 2), model.OptionFlags{}, today)
	assert.False(t, flags.EarlyRegistration)
	assert.False(t, flags.GroupEnrollment)
}

// An order submitted with {supplementary, assessment} and reloaded from the
// backend must reprice identically when run back through the edit formula
// with the same stored fields.
func TestEditRepriceRoundTrip(t *testing.T) {
	course := baseCourse()
	flags := model.OptionFlags{Supplementary: true, Assessment: true}
	ctx := sched(&saturday, "", 2)

	stored := QuoteOrderEdit(course, ctx, flags)
	reloaded := QuoteOrderEdit(course, ctx, flags)

	require.Equal(t, stored, reloaded)
	assert.Equal(t, int64(28300), stored) // 8000*2*1.5 + 2000*2 + 300
}
