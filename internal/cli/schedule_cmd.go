package cli

import (
	"fmt"

	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Manage recurring weekly schedules",
		Long: `Schedules tag slots automatically on the listed weekdays from their start
date onward. Where schedules overlap, the one added last wins. A --from later
than --to wraps past midnight; equal times cover the whole day.`,
	}

	cmd.AddCommand(
		newScheduleListCmd(app),
		newScheduleAddCmd(app),
		newScheduleEditCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List schedules in evaluation order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			schedules, err := app.Schedules.List(ctx)
			if err != nil {
				return err
			}
			tags, err := app.Tags.List(ctx)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScheduleList(schedules, tags, settings.ClockFormat))
			return nil
		},
	}
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var tag, startsOn string
	from, to := &clockValue{}, &clockValue{}
	days := &weekdaySetValue{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a schedule",
		Example: `  slotlog schedule add --tag work --from 09:00 --to 17:00 --days weekdays
  slotlog schedule add --tag sleep --from 23:00 --to 07:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tagID, err := resolveTagID(ctx, app, tag)
			if err != nil {
				return err
			}

			raw := domain.RawSchedule{
				TagID:       &tagID,
				StartMinute: from.ptr(),
				EndMinute:   to.ptr(),
			}
			if days.set {
				raw.Weekdays = days.days
			}
			if startsOn != "" {
				raw.StartsOn = &startsOn
			}

			s, err := app.Schedules.Add(ctx, raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added schedule %s: %s %s\n",
				formatter.TruncID(s.ID), scheduleSummary(s), formatter.Dim("from "+s.StartsOn))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Tag id or name")
	cmd.Flags().Var(from, "from", "Start time (HH:MM)")
	cmd.Flags().Var(to, "to", "End time (HH:MM, exclusive)")
	cmd.Flags().Var(days, "days", "Weekdays: mon,tue,... | weekdays | weekends | all (default all)")
	cmd.Flags().StringVar(&startsOn, "starts-on", "", "First date the schedule applies (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("tag")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newScheduleEditCmd(app *App) *cobra.Command {
	var tag, startsOn string
	from, to := &clockValue{}, &clockValue{}
	days := &weekdaySetValue{}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a schedule, keeping its place in the evaluation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScheduleID(ctx, app, args[0])
			if err != nil {
				return err
			}

			patch := domain.SchedulePatch{
				StartMinute: from.ptr(),
				EndMinute:   to.ptr(),
			}
			if tag != "" {
				tagID, err := resolveTagID(ctx, app, tag)
				if err != nil {
					return err
				}
				patch.TagID = &tagID
			}
			if days.set {
				patch.Weekdays = days.days
			}
			if startsOn != "" {
				patch.StartsOn = &startsOn
			}

			s, err := app.Schedules.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated schedule %s: %s\n", formatter.TruncID(s.ID), scheduleSummary(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Tag id or name")
	cmd.Flags().Var(from, "from", "Start time (HH:MM)")
	cmd.Flags().Var(to, "to", "End time (HH:MM, exclusive)")
	cmd.Flags().Var(days, "days", "Weekdays: mon,tue,... | weekdays | weekends | all")
	cmd.Flags().StringVar(&startsOn, "starts-on", "", "First date the schedule applies (YYYY-MM-DD)")

	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a schedule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScheduleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Schedules.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed schedule %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func scheduleSummary(s *domain.DailySchedule) string {
	return fmt.Sprintf("%s %s %s", s.TagID,
		formatter.FormatScheduleRange(*s, domain.Clock24), formatter.FormatWeekdays(s.Weekdays))
}
