package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/tui"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// draftFlags is the shared flag set for quoting and creating orders.
type draftFlags struct {
	courseID  int64
	tutorID   int64
	date      string
	timeStart string
	persons   int

	supplementary bool
	personalized  bool
	excursions    bool
	assessment    bool
	interactive   bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Int64Var(&f.courseID, "course", 0, "course id")
	fl.Int64Var(&f.tutorID, "tutor", 0, "tutor id")
	fl.StringVar(&f.date, "date", "", "start date, YYYY-MM-DD")
	fl.StringVar(&f.timeStart, "time", "", "start time, HH:MM")
	fl.IntVar(&f.persons, "persons", 1, "number of students")
	fl.BoolVar(&f.supplementary, "supplementary", false, "supplementary materials")
	fl.BoolVar(&f.personalized, "personalized", false, "personalized lessons")
	fl.BoolVar(&f.excursions, "excursions", false, "cultural excursions")
	fl.BoolVar(&f.assessment, "assessment", false, "level assessment")
	fl.BoolVar(&f.interactive, "interactive", false, "interactive platform")
}

// draft resolves the flags into an order draft, loading the referenced
// course and tutor from the catalog.
func (f *draftFlags) draft(ctx context.Context, rt runtime) (model.OrderDraft, error) {
	draft := model.OrderDraft{
		StartTime: f.timeStart,
		Persons:   f.persons,
		Flags: model.OptionFlags{
			Supplementary: f.supplementary,
			Personalized:  f.personalized,
			Excursions:    f.excursions,
			Assessment:    f.assessment,
			Interactive:   f.interactive,
		},
	}

	if f.courseID != 0 {
		courses, err := rt.facade.Courses(ctx)
		if err != nil {
			return draft, err
		}
		course, ok := usecase.CourseIndex(courses)[f.courseID]
		if !ok {
			return draft, domainErrors.NewValidation(domainErrors.KindCourseNotFound, "course not found")
		}
		draft.Course = &course
	}
	if f.tutorID != 0 {
		tutors, err := rt.facade.Tutors(ctx)
		if err != nil {
			return draft, err
		}
		for _, tutor := range tutors {
			if tutor.ID == f.tutorID {
				t := tutor
				draft.Tutor = &t
				break
			}
		}
		if draft.Tutor == nil {
			return draft, domainErrors.ErrTutorNotFound
		}
	}
	if f.date != "" {
		day, err := time.Parse("2006-01-02", f.date)
		if err != nil {
			return draft, fmt.Errorf("parse start date: %w", err)
		}
		draft.StartDate = &day
	}
	return draft, nil
}

func newQuoteCmd(opts ...fx.Option) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a booking without submitting it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				draft, err := flags.draft(ctx, rt)
				if err != nil {
					return err
				}
				price := rt.facade.Quote(draft)
				fmt.Fprintf(cmd.OutOrStdout(), "estimated price: %s\n", tui.FormatPrice(price))
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}
