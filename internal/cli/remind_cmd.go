package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/reminder"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the reminder loop in the foreground",
		Long: `Check every 15 seconds whether a new slot has begun. In sound mode every
new slot rings the terminal bell. In notify mode a message is printed between
07:00 and 23:00 when the slot that just ended is not logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			if settings.NotificationMode == domain.NotifyOff {
				return fmt.Errorf("%w: enable them with: slotlog settings set --notify notify", reminder.ErrDisabled)
			}

			out := cmd.OutOrStdout()
			w := reminder.NewWatcher(app.Reminders, reminderNotifier(out, settings.ClockFormat),
				reminder.WithClock(app.now),
				reminder.WithLogger(app.logger()),
			)

			fmt.Fprintf(out, "Reminders on %s. Press Ctrl+C to stop.\n", formatter.ModeBadge(settings.NotificationMode))
			if err := w.Run(ctx); err != nil && !errors.Is(err, ctx.Err()) {
				return err
			}
			return nil
		},
	}
}

// reminderNotifier prints a message in notify mode and adds the terminal
// bell in sound mode.
func reminderNotifier(w io.Writer, clock int) reminder.Notifier {
	msg := reminder.MessageNotifier{
		W:      w,
		Format: func(minute int) string { return formatter.FormatMinuteTime(minute, clock) },
	}
	return reminder.ModeNotifier{
		domain.NotifyAlert: msg,
		domain.NotifySound: reminder.Multi{reminder.BellNotifier{W: w}, msg},
	}
}
