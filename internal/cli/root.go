package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tags      service.TagService
	Schedules service.ScheduleService
	Days      service.DayService
	Stats     service.StatsService
	Settings  service.SettingsService
	Reminders service.ReminderService
	Snapshots service.SnapshotService

	// Narrow use-case ports. When nil the matching service above is used.
	LogSlots app.LogSlotsUseCase
	Snapshot app.SnapshotUseCase

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	Now           func() time.Time
	Logger        *slog.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) today() string {
	return domain.FormatDate(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// NewRootCmd creates the top-level "slotlog" command and registers all
// subcommands against the provided App. Without a subcommand it shows today.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "slotlog",
		Short:         "Track your day in 15 or 30 minute slots",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDay(cmd, a, "", false)
		},
	}

	root.AddCommand(
		newDayCmd(a),
		newTagCmd(a),
		newScheduleCmd(a),
		newSettingsCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newRemindCmd(a),
		newWatchCmd(a),
	)

	return root
}
