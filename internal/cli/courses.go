package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/pkg/debounce"
	"github.com/coursedesk/coursedesk/internal/tui"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

func newCoursesCmd(opts ...fx.Option) *cobra.Command {
	var (
		search string
		page   int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
		Long:  "List courses with optional name or level search. With --follow, each line typed on stdin becomes the new search term.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				courses, err := rt.facade.Courses(ctx)
				if err != nil {
					return err
				}
				state := usecase.CatalogState{
					Courses: courses,
					Search:  search,
					Page:    page,
					PerPage: rt.cfg.PageSize,
				}
				if follow {
					return followCourses(cmd, rt, state)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCourses(state))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by course name or level")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&follow, "follow", false, "re-render for every search term read from stdin")
	return cmd
}

// followCourses re-renders the catalog for each line of input. Rapid input is
// debounced so only the settled term triggers a render.
func followCourses(cmd *cobra.Command, rt runtime, state usecase.CatalogState) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.RenderCourses(state))

	deb := debounce.New(rt.cfg.SearchDebounce)
	defer deb.Stop()

	var mu sync.Mutex
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		deb.Call(func() {
			mu.Lock()
			defer mu.Unlock()
			next := state
			next.Search = term
			next.Page = 1
			fmt.Fprint(out, tui.RenderCourses(next))
		})
	}
	return scanner.Err()
}
