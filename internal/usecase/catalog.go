package usecase

import (
	"strings"

	"github.com/samber/lo"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// CatalogState is the explicit view state of the catalog screens: loaded
// data plus the current search and page. Renderers receive it as a value,
// nothing lives in package globals.
type CatalogState struct {
	Courses []model.Course
	Tutors  []model.Tutor
	Search  string
	Page    int
	PerPage int
}

// FilteredCourses returns courses whose name or level contains the search
// term, case-insensitively. An empty term keeps everything.
func (s CatalogState) FilteredCourses() []model.Course {
	term := strings.ToLower(strings.TrimSpace(s.Search))
	if term == "" {
		return s.Courses
	}
	return lo.Filter(s.Courses, func(c model.Course, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(string(c.Level)), term)
	})
}

// CoursesPage returns the current page of filtered courses and the total
// page count.
func (s CatalogState) CoursesPage() ([]model.Course, int) {
	return Paginate(s.FilteredCourses(), s.Page, s.PerPage)
}

// FilterTutors keeps tutors with the exact proficiency level (empty level
// matches all) and at least the given years of experience.
func FilterTutors(tutors []model.Tutor, level model.CourseLevel, minExperience int) []model.Tutor {
	return lo.Filter(tutors, func(t model.Tutor, _ int) bool {
		matchLevel := level == "" || t.LanguageLevel == level
		return matchLevel && t.WorkExperience >= minExperience
	})
}

// CourseIndex maps courses by their identifier.
func CourseIndex(courses []model.Course) map[int64]model.Course {
	return lo.KeyBy(courses, func(c model.Course) int64 { return c.ID })
}

// OrderIndex maps orders by their identifier.
func OrderIndex(orders []model.Order) map[int64]model.Order {
	return lo.KeyBy(orders, func(o model.Order) int64 { return o.ID })
}

// Paginate slices items into 1-based pages of perPage entries, returning the
// requested page and the total number of pages.
func Paginate[T any](items []T, page, perPage int) ([]T, int) {
	if perPage <= 0 {
		perPage = 5
	}
	pages := (len(items) + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if page > pages {
		return nil, pages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pages
}
