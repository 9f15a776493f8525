package cli

import (
	"fmt"

	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showSettings(cmd, app)
			},
		},
		newSettingsSetCmd(app),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	s, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(*s))
	return nil
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var interval, clock int
	var mode string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change the slot interval (15 or 30 minutes), the clock format (12 or 24)
or the notification mode (off, notify, sound).

Changing the interval does not rewrite stored slots: slot numbers keep their
index, so a slot logged at 30 minutes covers a different time at 15.`,
		Example: `  slotlog settings set --interval 15
  slotlog settings set --clock 12 --notify sound`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			if cmd.Flags().Changed("interval") {
				patch.Interval = &interval
			}
			if cmd.Flags().Changed("clock") {
				patch.ClockFormat = &clock
			}
			if cmd.Flags().Changed("notify") {
				m := domain.NotificationMode(mode)
				patch.NotificationMode = &m
			}
			if patch.Interval == nil && patch.ClockFormat == nil && patch.NotificationMode == nil {
				return fmt.Errorf("nothing to change: pass --interval, --clock or --notify")
			}

			if _, err := app.Settings.Update(cmd.Context(), patch); err != nil {
				return err
			}
			return showSettings(cmd, app)
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 30, "Slot length in minutes (15 or 30)")
	cmd.Flags().IntVar(&clock, "clock", 24, "Clock format (12 or 24)")
	cmd.Flags().StringVar(&mode, "notify", "notify", "Notification mode (off, notify, sound)")

	return cmd
}
