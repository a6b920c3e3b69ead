package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/app"
	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/di"
)

func newRootCmd(opts ...fx.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coursedesk",
		Short:         "Browse language courses and manage bookings",
		Long:          "Coursedesk is a client for the course booking service: browse the catalog, price bookings and manage orders from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCoursesCmd(opts...))
	cmd.AddCommand(newTutorsCmd(opts...))
	cmd.AddCommand(newQuoteCmd(opts...))
	cmd.AddCommand(newOrdersCmd(opts...))
	return cmd
}

// NewRootCmdForTest returns the root command with extra dependency injection
// options applied, which tests use to swap in stubs.
func NewRootCmdForTest(opts ...fx.Option) *cobra.Command {
	return newRootCmd(opts...)
}

// Execute runs the CLI against the given context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// runtime bundles the components every command needs.
type runtime struct {
	facade *app.BookingFacade
	cfg    *config.Config
	logger *slog.Logger
}

// withRuntime builds the application graph, runs fn inside its lifecycle and
// tears it down.
func withRuntime(ctx context.Context, opts []fx.Option, fn func(ctx context.Context, rt runtime) error) error {
	var rt runtime
	fxApp := fx.New(
		fx.NopLogger,
		di.Module(opts...),
		fx.Populate(&rt.facade, &rt.cfg, &rt.logger),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}
	if err := fxApp.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = fxApp.Stop(ctx) }()
	return fn(ctx, rt)
}
