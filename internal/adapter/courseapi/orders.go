package courseapi

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// orderWire mirrors the JSON shape of a persisted order. The backend reports
// price as a number that is not guaranteed to be integral.
type orderWire struct {
	ID                int64   `json:"id,omitempty"`
	CourseID          int64   `json:"course_id"`
	TutorID           int64   `json:"tutor_id"`
	DateStart         string  `json:"date_start"`
	TimeStart         string  `json:"time_start"`
	Persons           int     `json:"persons"`
	Price             float64 `json:"price"`
	Duration          int     `json:"duration"`
	EarlyRegistration bool    `json:"early_registration"`
	GroupEnrollment   bool    `json:"group_enrollment"`
	IntensiveCourse   bool    `json:"intensive_course"`
	Supplementary     bool    `json:"supplementary"`
	Personalized      bool    `json:"personalized"`
	Excursions        bool    `json:"excursions"`
	Assessment        bool    `json:"assessment"`
	Interactive       bool    `json:"interactive"`
}

// List fetches all orders visible to the current API key.
func (c *Client) List(ctx context.Context) ([]model.Order, error) {
	var wires []orderWire
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &wires); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(wires))
	for _, w := range wires {
		orders = append(orders, toOrder(w))
	}
	return orders, nil
}

// Create submits a new order and returns the stored record.
func (c *Client) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	var stored orderWire
	if err := c.do(ctx, http.MethodPost, "/orders", toWire(order), &stored); err != nil {
		return nil, err
	}
	created := toOrder(stored)
	return &created, nil
}

// Update replaces the order's fields and returns the stored record.
func (c *Client) Update(ctx context.Context, id int64, order model.Order) (*model.Order, error) {
	var stored orderWire
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), toWire(order), &stored); err != nil {
		return nil, err
	}
	updated := toOrder(stored)
	return &updated, nil
}

// Delete removes the order.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

func toOrder(w orderWire) model.Order {
	return model.Order{
		ID:        w.ID,
		CourseID:  w.CourseID,
		TutorID:   w.TutorID,
		DateStart: w.DateStart,
		TimeStart: w.TimeStart,
		Persons:   w.Persons,
		Price:     int64(math.Round(w.Price)),
		Duration:  w.Duration,
		Flags: model.OptionFlags{
			Supplementary:     w.Supplementary,
			Personalized:      w.Personalized,
			Excursions:        w.Excursions,
			Assessment:        w.Assessment,
			Interactive:       w.Interactive,
			EarlyRegistration: w.EarlyRegistration,
			GroupEnrollment:   w.GroupEnrollment,
			IntensiveCourse:   w.IntensiveCourse,
		},
	}
}

func toWire(order model.Order) orderWire {
	return orderWire{
		CourseID:          order.CourseID,
		TutorID:           order.TutorID,
		DateStart:         order.DateStart,
		TimeStart:         order.TimeStart,
		Persons:           order.Persons,
		Price:             float64(order.Price),
		Duration:          order.Duration,
		EarlyRegistration: order.Flags.EarlyRegistration,
		GroupEnrollment:   order.Flags.GroupEnrollment,
		IntensiveCourse:   order.Flags.IntensiveCourse,
		Supplementary:     order.Flags.Supplementary,
		Personalized:      order.Flags.Personalized,
		Excursions:        order.Flags.Excursions,
		Assessment:        order.Flags.Assessment,
		Interactive:       order.Flags.Interactive,
	}
}
