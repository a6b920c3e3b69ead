package usecase

import "github.com/coursedesk/coursedesk/internal/domain/model"

// OrderRow joins an order with its course for rendering. Course is nil when
// the catalog no longer has the referenced course.
type OrderRow struct {
	Order  model.Order
	Course *model.Course
}

// CabinetState is the explicit view state of the personal cabinet: the
// loaded orders, the catalog they reference and the current page.
type CabinetState struct {
	Orders  []model.Order
	Courses []model.Course
	Page    int
	PerPage int
}

// Rows joins every order with its course.
func (s CabinetState) Rows() []OrderRow {
	index := CourseIndex(s.Courses)
	rows := make([]OrderRow, 0, len(s.Orders))
	for _, order := range s.Orders {
		row := OrderRow{Order: order}
		if course, ok := index[order.CourseID]; ok {
			c := course
			row.Course = &c
		}
		rows = append(rows, row)
	}
	return rows
}

// RowsPage returns the current page of joined rows and the total page count.
func (s CabinetState) RowsPage() ([]OrderRow, int) {
	return Paginate(s.Rows(), s.Page, s.PerPage)
}
