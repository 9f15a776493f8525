package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/robfig/cron/v3"
)

// ErrDisabled is returned by Run when notifications are turned off.
var ErrDisabled = errors.New("notifications are off")

// Run checks for slot transitions on CheckSpec until ctx is cancelled. It
// refuses to start when the notification mode is off.
func (w *Watcher) Run(ctx context.Context) error {
	settings, err := w.source.Settings(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.NotificationMode == domain.NotifyOff {
		return ErrDisabled
	}

	// Record the starting slot so the first transition is the first reminder.
	if _, err := w.Check(ctx); err != nil {
		return err
	}

	logger := cronLogger{w.logger}
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	if _, err := c.AddFunc(CheckSpec, func() {
		if _, err := w.Check(ctx); err != nil {
			w.logger.ErrorContext(ctx, "reminder_check_failed", "error", err.Error())
		}
	}); err != nil {
		return fmt.Errorf("scheduling reminder check: %w", err)
	}

	c.Start()
	w.logger.InfoContext(ctx, "reminder_started", "mode", string(settings.NotificationMode), "interval", settings.Interval)
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}
