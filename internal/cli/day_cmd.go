package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newDayCmd(a *App) *cobra.Command {
	var date string
	var everySlot bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the slots of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDay(cmd, a, date, everySlot)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&everySlot, "all", false, "List every slot instead of merged blocks")

	cmd.AddCommand(newDaySetCmd(a))

	return cmd
}

func showDay(cmd *cobra.Command, a *App, date string, everySlot bool) error {
	now := a.now()
	if date == "" {
		date = a.today()
	}

	resp, err := a.Days.Day(cmd.Context(), app.DayRequest{Date: date, Now: &now})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(resp, now, everySlot))
	return nil
}

func newDaySetCmd(a *App) *cobra.Command {
	var date, tag string
	var clear bool
	slots := &slotListValue{}

	cmd := &cobra.Command{
		Use:   "set [SLOTS...]",
		Short: "Tag or clear slots",
		Long: `Record a manual decision for one or more slots.

Slots are slot numbers (12), slot ranges (12-15), times (06:00) or time
ranges (06:00-07:30, end exclusive). With --clear the slots show no tag even
where a schedule would tag them.`,
		Example: `  slotlog day set 18-21 --tag work
  slotlog day set 06:00-07:30 --tag exercise --date 2026-10-12
  slotlog day set 24 --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if tag != "" && clear {
				return errors.New("use either --tag or --clear, not both")
			}
			for _, arg := range args {
				if err := slots.Set(arg); err != nil {
					return err
				}
			}
			if len(slots.specs) == 0 {
				return errors.New("no slots given")
			}
			if date == "" {
				date = a.today()
			}

			settings, err := a.Settings.Get(ctx)
			if err != nil {
				return err
			}
			resolved, err := slots.resolve(settings.Interval)
			if err != nil {
				return err
			}

			var tagID string
			switch {
			case tag != "":
				if tagID, err = resolveTagID(ctx, a, tag); err != nil {
					return err
				}
			case clear:
			case a.interactive():
				if tagID, err = pickTag(ctx, a, len(resolved)); err != nil {
					return err
				}
			default:
				return errors.New("pass --tag ID or --clear")
			}

			logSlots := a.logSlotsUseCase()
			if logSlots == nil {
				return errors.New("log-slots use case is not configured")
			}
			res, err := logSlots.SetEntries(ctx, app.SetEntriesRequest{Date: date, Slots: resolved, TagID: tagID})
			if err != nil {
				return err
			}

			label := "no tag"
			if tagID != "" {
				label = tagID
				if t, err := a.Tags.GetByID(ctx, tagID); err == nil {
					label = formatter.TagLabel(t.Name, t.Color)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d %s on %s to %s %s\n",
				len(res.Slots), plural(len(res.Slots), "slot", "slots"), res.Date, label,
				formatter.Dim(fmt.Sprintf("(%d changed)", res.Changed)))
			return nil
		},
	}

	cmd.Flags().Var(slots, "slots", "Slots to set (repeatable, comma separated)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&tag, "tag", "", "Tag id or name to assign")
	cmd.Flags().BoolVar(&clear, "clear", false, "Show no tag on these slots")

	return cmd
}

// pickTag asks for a tag with a select prompt. The first option is "no tag".
func pickTag(ctx context.Context, a *App, count int) (string, error) {
	tags, err := a.Tags.List(ctx)
	if err != nil {
		return "", err
	}

	options := make([]huh.Option[string], 0, len(tags)+1)
	options = append(options, huh.NewOption(formatter.Dim("(no tag)"), ""))
	for _, t := range tags {
		options = append(options, huh.NewOption(formatter.TagLabel(t.Name, t.Color), t.ID))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Tag for %d %s", count, plural(count, "slot", "slots"))).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(slotlogHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return choice, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
