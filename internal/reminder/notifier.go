package reminder

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/slotlog/internal/domain"
)

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	W io.Writer
}

func (b BellNotifier) Notify(_ context.Context, _ Reminder) error {
	_, err := io.WriteString(b.W, "\a")
	return err
}

// MessageNotifier prints a one-line nudge. Format renders the reminder time.
type MessageNotifier struct {
	W      io.Writer
	Format func(minute int) string
}

func (m MessageNotifier) Notify(_ context.Context, r Reminder) error {
	at := r.At.Format("15:04")
	if m.Format != nil {
		at = m.Format(r.At.Hour()*60 + r.At.Minute())
	}
	_, err := fmt.Fprintf(m.W, "[%s] %s: %s\n", at, Title, Body)
	return err
}

// ModeNotifier routes a reminder to the notifier registered for its mode.
// Modes without a notifier are ignored.
type ModeNotifier map[domain.NotificationMode]Notifier

func (m ModeNotifier) Notify(ctx context.Context, r Reminder) error {
	n, ok := m[r.Mode]
	if !ok {
		return nil
	}
	return n.Notify(ctx, r)
}

// Multi sends a reminder to every notifier and returns the first error.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, r Reminder) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
