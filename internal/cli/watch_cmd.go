package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of the day that refreshes as slots pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			// Sound mode rings the bell on stderr so the view is not disturbed.
			bell := reminder.ModeNotifier{domain.NotifySound: reminder.BellNotifier{W: os.Stderr}}
			w := reminder.NewWatcher(app.Reminders, bell,
				reminder.WithClock(app.now),
				reminder.WithLogger(app.logger()),
			)

			p := tea.NewProgram(newWatchModel(ctx, app, date, w), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, default today and follow midnight)")

	return cmd
}
