package test

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

var levels = []model.CourseLevel{
	model.CourseLevelBeginner,
	model.CourseLevelIntermediate,
	model.CourseLevelAdvanced,
}

// RandomCourse produces a plausible catalog course for tests.
func RandomCourse(id int64) model.Course {
	start := gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 6, 0))
	return model.Course{
		ID:          id,
		Name:        gofakeit.Sentence(3),
		Description: gofakeit.Sentence(8),
		Teacher:     gofakeit.Name(),
		Level:       levels[gofakeit.Number(0, len(levels)-1)],
		FeePerHour:  int64(gofakeit.Number(300, 3000)),
		TotalLength: gofakeit.Number(2, 12),
		WeekLength:  gofakeit.Number(1, 7),
		StartDates:  []time.Time{start, start.AddDate(0, 0, 7)},
	}
}

// RandomTutor produces a plausible directory tutor for tests.
func RandomTutor(id int64) model.Tutor {
	return model.Tutor{
		ID:               id,
		Name:             gofakeit.Name(),
		LanguageLevel:    levels[gofakeit.Number(0, len(levels)-1)],
		WorkExperience:   gofakeit.Number(0, 30),
		PricePerHour:     int64(gofakeit.Number(500, 5000)),
		LanguagesOffered: []string{gofakeit.Language(), gofakeit.Language()},
	}
}

// RandomOrder produces a stored order referencing the given course.
func RandomOrder(id int64, course model.Course) model.Order {
	persons := gofakeit.Number(1, 20)
	return model.Order{
		ID:        id,
		CourseID:  course.ID,
		DateStart: gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 3, 0)).Format("2006-01-02"),
		TimeStart: "10:00",
		Persons:   persons,
		Price:     int64(gofakeit.Number(1000, 100000)),
		Duration:  course.DurationHours(),
		Flags: model.OptionFlags{
			Supplementary:   gofakeit.Bool(),
			Assessment:      gofakeit.Bool(),
			GroupEnrollment: persons >= 5,
		},
	}
}
