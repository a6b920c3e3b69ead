package courseapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// courseWire mirrors the JSON shape of a catalog course.
type courseWire struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Teacher          string   `json:"teacher"`
	Level            string   `json:"level"`
	CourseFeePerHour int64    `json:"course_fee_per_hour"`
	TotalLength      int      `json:"total_length"`
	WeekLength       int      `json:"week_length"`
	StartDates       []string `json:"start_dates"`
}

// tutorWire mirrors the JSON shape of a directory tutor.
type tutorWire struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	LanguageLevel    string   `json:"language_level"`
	WorkExperience   int      `json:"work_experience"`
	PricePerHour     int64    `json:"price_per_hour"`
	LanguagesOffered []string `json:"languages_offered"`
}

var startDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Courses fetches the full course catalog.
func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	var wires []courseWire
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &wires); err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(wires))
	for _, w := range wires {
		courses = append(courses, c.toCourse(w))
	}
	return courses, nil
}

// Tutors fetches the tutor directory.
func (c *Client) Tutors(ctx context.Context) ([]model.Tutor, error) {
	var wires []tutorWire
	if err := c.do(ctx, http.MethodGet, "/tutors", nil, &wires); err != nil {
		return nil, err
	}

	tutors := make([]model.Tutor, 0, len(wires))
	for _, w := range wires {
		tutors = append(tutors, model.Tutor{
			ID:               w.ID,
			Name:             w.Name,
			LanguageLevel:    model.CourseLevel(w.LanguageLevel),
			WorkExperience:   w.WorkExperience,
			PricePerHour:     w.PricePerHour,
			LanguagesOffered: w.LanguagesOffered,
		})
	}
	return tutors, nil
}

func (c *Client) toCourse(w courseWire) model.Course {
	course := model.Course{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Teacher:     w.Teacher,
		Level:       model.CourseLevel(w.Level),
		FeePerHour:  w.CourseFeePerHour,
		TotalLength: w.TotalLength,
		WeekLength:  w.WeekLength,
	}
	for _, raw := range w.StartDates {
		ts, ok := parseStartDate(raw)
		if !ok {
			c.logger.Warn("skipping unparsable start date",
				slog.Int64("course_id", w.ID),
				slog.String("value", raw))
			continue
		}
		course.StartDates = append(course.StartDates, ts)
	}
	return course
}

func parseStartDate(raw string) (time.Time, bool) {
	for _, layout := range startDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
