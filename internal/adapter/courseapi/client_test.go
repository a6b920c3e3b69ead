package courseapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "test-key", time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, srv
}

func TestNewValidatesURL(t *testing.T) {
	if _, err := New("://bad-url", "key", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := New("/relative", "key", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestRequestsCarryAPIKey(t *testing.T) {
	var gotKey, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("[]"))
	})

	if _, err := client.Courses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key on query, got %q", gotKey)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
}

func TestCoursesDecodesCatalog(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/courses" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{
			"id": 3,
			"name": "Italian basics",
			"teacher": "L. Bianchi",
			"level": "Beginner",
			"course_fee_per_hour": 1000,
			"total_length": 4,
			"week_length": 2,
			"start_dates": ["2026-09-14T10:00:00Z", "not-a-date", "2026-09-07T18:00:00"]
		}]`))
	})

	courses, err := client.Courses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected one course, got %d", len(courses))
	}

	course := courses[0]
	if course.Name != "Italian basics" || course.Level != model.CourseLevelBeginner {
		t.Fatalf("unexpected course %+v", course)
	}
	if course.FeePerHour != 1000 || course.DurationHours() != 8 {
		t.Fatalf("unexpected fee/duration %+v", course)
	}
	if len(course.StartDates) != 2 {
		t.Fatalf("expected unparsable date to be skipped, got %d dates", len(course.StartDates))
	}
}

func TestTutorsDecodesDirectory(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tutors" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{
			"id": 9,
			"name": "A. Petrova",
			"language_level": "Advanced",
			"work_experience": 7,
			"price_per_hour": 1500,
			"languages_offered": ["English", "German"]
		}]`))
	})

	tutors, err := client.Tutors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tutors) != 1 {
		t.Fatalf("expected one tutor, got %d", len(tutors))
	}
	if tutors[0].WorkExperience != 7 || len(tutors[0].LanguagesOffered) != 2 {
		t.Fatalf("unexpected tutor %+v", tutors[0])
	}
}

func TestListRoundsFractionalPrice(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "course_id": 3, "price": 8399.5, "persons": 2}]`))
	})

	orders, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders[0].Price != 8400 {
		t.Fatalf("expected rounded price 8400, got %d", orders[0].Price)
	}
}

func TestCreateSendsWirePayload(t *testing.T) {
	var got orderWire
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		got.ID = 42
		_ = json.NewEncoder(w).Encode(got)
	})

	order := model.Order{
		CourseID:  3,
		TutorID:   0,
		DateStart: "2026-10-03",
		TimeStart: "10:00",
		Persons:   2,
		Price:     28300,
		Duration:  8,
		Flags:     model.OptionFlags{Supplementary: true, Assessment: true, EarlyRegistration: true},
	}

	created, err := client.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected stored id, got %d", created.ID)
	}
	if got.CourseID != 3 || got.Persons != 2 || got.Price != 28300 {
		t.Fatalf("unexpected payload %+v", got)
	}
	if !got.Supplementary || !got.Assessment || !got.EarlyRegistration || got.Interactive {
		t.Fatalf("unexpected flags in payload %+v", got)
	}
}

func TestUpdateAndDeleteUseOrderPath(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			_, _ = w.Write([]byte(`{"id": 7, "course_id": 1}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if _, err := client.Update(context.Background(), 7, model.Order{CourseID: 1}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if err := client.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	want := []string{"PUT /orders/7", "DELETE /orders/7"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("expected %s, got %s", p, paths[i])
		}
	}
}

func TestErrorEnvelopeBecomesStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": "persons out of range"}`))
	})

	_, err := client.Create(context.Background(), model.Order{})

	var statusErr StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusUnprocessableEntity || statusErr.Message != "persons out of range" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestMalformedBodyIsReported(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy error</html>`))
	})

	_, err := client.Courses(context.Background())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestNetworkErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := New(srv.URL, "key", time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	srv.Close()

	if _, err := client.List(context.Background()); err == nil {
		t.Fatal("expected error when backend is unreachable")
	}
}
