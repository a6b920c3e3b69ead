package model

// Tutor describes a tutor from the directory. Immutable once fetched.
type Tutor struct {
	ID               int64
	Name             string
	LanguageLevel    CourseLevel
	WorkExperience   int // years
	PricePerHour     int64
	LanguagesOffered []string
}
