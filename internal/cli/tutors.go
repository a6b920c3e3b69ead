package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/tui"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

func newTutorsCmd(opts ...fx.Option) *cobra.Command {
	var (
		level         string
		minExperience int
	)

	cmd := &cobra.Command{
		Use:   "tutors",
		Short: "Browse the tutor directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				tutors, err := rt.facade.Tutors(ctx)
				if err != nil {
					return err
				}
				filtered := usecase.FilterTutors(tutors, model.CourseLevel(level), minExperience)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderTutors(filtered))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "exact proficiency level, e.g. B2")
	cmd.Flags().IntVar(&minExperience, "min-experience", 0, "minimum years of work experience")
	return cmd
}
