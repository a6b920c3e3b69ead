package test

import (
	"context"
	"sync"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// CatalogStub serves a fixed catalog for tests.
type CatalogStub struct {
	CoursesList []model.Course
	TutorsList  []model.Tutor
	Err         error
}

// Courses returns the configured course list.
func (s *CatalogStub) Courses(context.Context) ([]model.Course, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.CoursesList, nil
}

// Tutors returns the configured tutor list.
func (s *CatalogStub) Tutors(context.Context) ([]model.Tutor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.TutorsList, nil
}

// OrdersStub keeps orders in memory and records writes.
type OrdersStub struct {
	sync.Mutex

	OrdersList []model.Order
	Err        error
	NextID     int64

	Created []model.Order
	Updated []model.Order
	Deleted []int64
}

// List returns the stored orders.
func (s *OrdersStub) List(context.Context) ([]model.Order, error) {
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Order(nil), s.OrdersList...), nil
}

// Create stores the order and assigns the next identifier.
func (s *OrdersStub) Create(_ context.Context, order model.Order) (*model.Order, error) {
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	order.ID = s.NextID
	s.NextID++
	s.OrdersList = append(s.OrdersList, order)
	s.Created = append(s.Created, order)
	return &order, nil
}

// Update replaces the stored order with the same identifier.
func (s *OrdersStub) Update(_ context.Context, id int64, order model.Order) (*model.Order, error) {
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	order.ID = id
	for i := range s.OrdersList {
		if s.OrdersList[i].ID == id {
			s.OrdersList[i] = order
		}
	}
	s.Updated = append(s.Updated, order)
	return &order, nil
}

// Delete removes the stored order.
func (s *OrdersStub) Delete(_ context.Context, id int64) error {
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return s.Err
	}
	kept := s.OrdersList[:0]
	for _, order := range s.OrdersList {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	s.OrdersList = kept
	s.Deleted = append(s.Deleted, id)
	return nil
}
