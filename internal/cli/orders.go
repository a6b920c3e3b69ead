package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/notification"
	"github.com/coursedesk/coursedesk/internal/tui"
	"github.com/coursedesk/coursedesk/internal/usecase"
	"github.com/coursedesk/coursedesk/internal/worker"
)

func newOrdersCmd(opts ...fx.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage your bookings",
	}
	cmd.AddCommand(newOrdersListCmd(opts...))
	cmd.AddCommand(newOrdersShowCmd(opts...))
	cmd.AddCommand(newOrdersCreateCmd(opts...))
	cmd.AddCommand(newOrdersEditCmd(opts...))
	cmd.AddCommand(newOrdersDeleteCmd(opts...))
	cmd.AddCommand(newOrdersWatchCmd(opts...))
	return cmd
}

// terminalNotifier renders notifications to the command output.
type terminalNotifier struct {
	out io.Writer
}

func (n terminalNotifier) Notify(msg notification.Notification) {
	fmt.Fprintln(n.out, tui.RenderNotification(msg))
}

func newOrdersListCmd(opts ...fx.Option) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				state, err := rt.facade.Cabinet(ctx, page, rt.cfg.PageSize)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(state))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newOrdersShowCmd(opts ...fx.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				state, err := rt.facade.Cabinet(ctx, 1, rt.cfg.PageSize)
				if err != nil {
					return err
				}
				for _, row := range state.Rows() {
					if row.Order.ID == id {
						fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderDetails(row))
						return nil
					}
				}
				return fmt.Errorf("order %d not found", id)
			})
		},
	}
	return cmd
}

func newOrdersCreateCmd(opts ...fx.Option) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate, price and submit a booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				notifier := terminalNotifier{out: cmd.OutOrStdout()}
				draft, err := flags.draft(ctx, rt)
				if err != nil {
					notifier.Notify(notification.FromError(err))
					return err
				}
				order, err := rt.facade.PlaceOrder(ctx, draft)
				if err != nil {
					notifier.Notify(notification.FromError(err))
					return err
				}
				notifier.Notify(notification.Success(
					fmt.Sprintf("order %d created, %s", order.ID, tui.FormatPrice(order.Price))))
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newOrdersEditCmd(opts ...fx.Option) *cobra.Command {
	var (
		courseID int64
		date     string
		persons  int
		early    bool
		group    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an order and reprice it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				notifier := terminalNotifier{out: cmd.OutOrStdout()}
				orders, err := rt.facade.Orders(ctx)
				if err != nil {
					return err
				}
				stored, ok := usecase.OrderIndex(orders)[id]
				if !ok {
					err := domainErrors.NewValidation(domainErrors.KindOrderNotFound, "order not found")
					notifier.Notify(notification.FromError(err))
					return err
				}

				// Fields the user did not pass keep their stored values.
				edit := usecase.OrderEdit{
					OrderID:           id,
					CourseID:          stored.CourseID,
					DateStart:         stored.DateStart,
					Persons:           stored.Persons,
					EarlyRegistration: stored.Flags.EarlyRegistration,
					GroupEnrollment:   stored.Flags.GroupEnrollment,
				}
				fl := cmd.Flags()
				if fl.Changed("course") {
					edit.CourseID = courseID
				}
				if fl.Changed("date") {
					edit.DateStart = date
				}
				if fl.Changed("persons") {
					edit.Persons = persons
				}
				if fl.Changed("early") {
					edit.EarlyRegistration = early
				}
				if fl.Changed("group") {
					edit.GroupEnrollment = group
				}

				order, err := rt.facade.EditOrder(ctx, edit)
				if err != nil {
					notifier.Notify(notification.FromError(err))
					return err
				}
				notifier.Notify(notification.Success(
					fmt.Sprintf("order %d updated, %s", order.ID, tui.FormatPrice(order.Price))))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().StringVar(&date, "date", "", "start date, YYYY-MM-DD")
	cmd.Flags().IntVar(&persons, "persons", 1, "number of students")
	cmd.Flags().BoolVar(&early, "early", false, "early registration discount")
	cmd.Flags().BoolVar(&group, "group", false, "group enrollment discount")
	return cmd
}

func newOrdersDeleteCmd(opts ...fx.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				notifier := terminalNotifier{out: cmd.OutOrStdout()}
				if err := rt.facade.DeleteOrder(ctx, id); err != nil {
					notifier.Notify(notification.FromError(err))
					return err
				}
				notifier.Notify(notification.Success(fmt.Sprintf("order %d deleted", id)))
				return nil
			})
		},
	}
	return cmd
}

func newOrdersWatchCmd(opts ...fx.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the order list on a polling interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt runtime) error {
				out := cmd.OutOrStdout()
				// Courses are refetched with every snapshot so renames and new
				// catalog entries show up during a long watch. A failed fetch
				// keeps the previous catalog.
				var courses []model.Course
				refresher := worker.NewCabinetRefresher(rt.facade, rt.cfg.OrdersPollInterval, func(orders []model.Order) {
					if fresh, err := rt.facade.Courses(ctx); err == nil {
						courses = fresh
					} else {
						rt.logger.Warn("courses refresh failed", slog.String("error", err.Error()))
					}
					state := usecase.CabinetState{
						Orders:  orders,
						Courses: courses,
						Page:    1,
						PerPage: rt.cfg.PageSize,
					}
					fmt.Fprint(out, tui.RenderOrders(state))
				}, rt.logger)

				refresher.Start(ctx)
				<-ctx.Done()
				refresher.Stop()
				return nil
			})
		},
	}
	return cmd
}

func parseOrderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", raw)
	}
	return id, nil
}
