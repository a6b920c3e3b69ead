// Package tui renders catalog and cabinet views for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/notification"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

var (
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	info    = lipgloss.Color("#8B949E")
	dim     = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	priceStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	activeStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	levelColors = map[model.CourseLevel]lipgloss.Color{
		model.CourseLevelBeginner:     success,
		model.CourseLevelIntermediate: warning,
		model.CourseLevelAdvanced:     danger,
	}

	kindColors = map[notification.Kind]lipgloss.Color{
		notification.KindInfo:    info,
		notification.KindSuccess: success,
		notification.KindWarning: warning,
		notification.KindDanger:  danger,
	}
)

// RenderCourses renders the current catalog page with a pagination bar.
func RenderCourses(state usecase.CatalogState) string {
	page, pages := state.CoursesPage()
	if len(page) == 0 {
		return dimStyle.Render("No courses found") + "\n"
	}

	var b strings.Builder
	for _, course := range page {
		b.WriteString(titleStyle.Render(course.Name))
		b.WriteString("  ")
		b.WriteString(levelBadge(course.Level))
		b.WriteString("\n")
		if course.Teacher != "" {
			b.WriteString(dimStyle.Render(course.Teacher))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s · %d weeks · %d h/week\n",
			priceStyle.Render(FormatPrice(course.FeePerHour)+"/h"),
			course.TotalLength, course.WeekLength))
		if days := course.StartDays(); len(days) > 0 {
			b.WriteString(dimStyle.Render("  starts: " + strings.Join(days, ", ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(paginationBar(state.Page, pages))
	return b.String()
}

// RenderTutors renders the tutor directory as a table.
func RenderTutors(tutors []model.Tutor) string {
	if len(tutors) == 0 {
		return dimStyle.Render("No tutors found") + "\n"
	}

	var b strings.Builder
	for _, t := range tutors {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			titleStyle.Render(t.Name),
			levelBadge(t.LanguageLevel),
			dimStyle.Render(fmt.Sprintf("%d yrs", t.WorkExperience)),
			priceStyle.Render(FormatPrice(t.PricePerHour)+"/h")))
		if len(t.LanguagesOffered) > 0 {
			b.WriteString(dimStyle.Render("  " + strings.Join(t.LanguagesOffered, ", ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderOrders renders the cabinet's order table page.
func RenderOrders(state usecase.CabinetState) string {
	rows, pages := state.RowsPage()
	if len(rows) == 0 {
		return dimStyle.Render("No orders") + "\n"
	}

	var b strings.Builder
	for _, row := range rows {
		name := "course not found"
		if row.Course != nil {
			name = row.Course.Name
		}
		b.WriteString(fmt.Sprintf("#%d  %s  %s  %s\n",
			row.Order.ID,
			titleStyle.Render(name),
			dimStyle.Render(row.Order.DateStart),
			priceStyle.Render(FormatPrice(row.Order.Price))))
	}
	b.WriteString(paginationBar(state.Page, pages))
	return b.String()
}

// RenderOrderDetails renders one order with its applied discount and
// surcharge labels.
func RenderOrderDetails(row usecase.OrderRow) string {
	var b strings.Builder
	name := "course not found"
	teacher := ""
	if row.Course != nil {
		name = row.Course.Name
		teacher = row.Course.Teacher
	}
	b.WriteString(titleStyle.Render(name) + "\n")
	if teacher != "" {
		b.WriteString(dimStyle.Render(teacher) + "\n")
	}
	b.WriteString(fmt.Sprintf("date: %s  time: %s  persons: %d\n",
		row.Order.DateStart, row.Order.TimeStart, row.Order.Persons))
	b.WriteString("total: " + priceStyle.Render(FormatPrice(row.Order.Price)) + "\n")

	var labels []string
	if row.Order.Flags.EarlyRegistration {
		labels = append(labels, "early registration: -10%")
	}
	if row.Order.Flags.GroupEnrollment {
		labels = append(labels, "group enrollment: -15%")
	}
	if row.Order.Flags.IntensiveCourse {
		labels = append(labels, "intensive course: +20%")
	}
	for _, label := range labels {
		b.WriteString(dimStyle.Render("  · "+label) + "\n")
	}
	return b.String()
}

// RenderNotification renders one toast-style message line.
func RenderNotification(n notification.Notification) string {
	color, ok := kindColors[n.Kind]
	if !ok {
		color = info
	}
	return lipgloss.NewStyle().Foreground(color).Render(n.Message)
}

// FormatPrice renders a whole-unit price with the currency sign.
func FormatPrice(price int64) string {
	return fmt.Sprintf("%d ₽", price)
}

func levelBadge(level model.CourseLevel) string {
	color, ok := levelColors[level]
	if !ok {
		color = dim
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(level))
}

func paginationBar(current, pages int) string {
	if pages <= 1 {
		return ""
	}
	parts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		label := fmt.Sprintf(" %d ", i)
		if i == current {
			parts = append(parts, activeStyle.Render(label))
			continue
		}
		parts = append(parts, dimStyle.Render(label))
	}
	return strings.Join(parts, "") + "\n"
}
