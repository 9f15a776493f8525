// Package reminder nudges the user to log time when a new slot begins.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

const (
	// CheckSpec is how often the watcher looks for a slot transition.
	CheckSpec = "@every 15s"

	// Notify-mode reminders are only sent between these local hours.
	WakingStartHour = 7
	WakingEndHour   = 23

	Title = "slotlog"
	Body  = "What have you been doing? Log your current time block."
)

// Source supplies the current settings and the logging status of the
// previous slot.
type Source interface {
	Settings(ctx context.Context) (*domain.Settings, error)
	PreviousSlotLogged(ctx context.Context, now time.Time) (bool, error)
}

// Reminder is one fired nudge.
type Reminder struct {
	Mode domain.NotificationMode
	Slot int
	At   time.Time
}

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type Option func(*Watcher)

func WithClock(now func() time.Time) Option {
	return func(w *Watcher) { w.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// Watcher tracks slot transitions. A reminder fires only on the first check
// that sees a new slot, and never twice for the same slot. Sound mode fires
// on every transition; notify mode only during waking hours and only when
// the previous slot is still unlogged.
type Watcher struct {
	source   Source
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu           sync.Mutex
	started      bool
	prevSlot     int
	lastNotified int
}

// NewWatcher returns a watcher. notifier may be nil when the caller only
// wants Check's return value.
func NewWatcher(source Source, notifier Notifier, opts ...Option) *Watcher {
	w := &Watcher{
		source:       source,
		notifier:     notifier,
		logger:       slog.New(slog.DiscardHandler),
		now:          time.Now,
		lastNotified: -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Check runs one tick and returns the reminder it fired, if any. The first
// call only records the current slot.
func (w *Watcher) Check(ctx context.Context) (*Reminder, error) {
	settings, err := w.source.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	now := w.now()
	slot := resolver.CurrentSlot(now, settings.Interval)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		w.started = true
		w.prevSlot = slot
		return nil, nil
	}
	if slot == w.prevSlot {
		return nil, nil
	}
	w.prevSlot = slot
	if w.lastNotified == slot {
		return nil, nil
	}

	switch settings.NotificationMode {
	case domain.NotifySound:
	case domain.NotifyAlert:
		if !isWakingHour(now) {
			return nil, nil
		}
		logged, err := w.source.PreviousSlotLogged(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("checking previous slot: %w", err)
		}
		if logged {
			return nil, nil
		}
	default:
		return nil, nil
	}

	r := &Reminder{Mode: settings.NotificationMode, Slot: slot, At: now}
	w.lastNotified = slot
	w.logger.InfoContext(ctx, "reminder_fired", "mode", string(r.Mode), "slot", slot)
	if w.notifier != nil {
		if err := w.notifier.Notify(ctx, *r); err != nil {
			return r, fmt.Errorf("sending reminder: %w", err)
		}
	}
	return r, nil
}

func isWakingHour(t time.Time) bool {
	h := t.Hour()
	return h >= WakingStartHour && h < WakingEndHour
}
