package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

// daySnapshot is everything the engine needs to resolve one date.
type daySnapshot struct {
	date      string
	settings  domain.Settings
	tags      []domain.Tag
	schedules []domain.DailySchedule
	overrides map[int]domain.Override
}

type snapshotRepos struct {
	tags      repository.TagRepo
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	settings  repository.SettingsRepo
}

func (r snapshotRepos) loadDay(ctx context.Context, date string) (*daySnapshot, error) {
	settings, err := r.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	tags, err := r.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tags: %w", err)
	}
	schedules, err := r.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedules: %w", err)
	}
	entries, err := r.entries.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	return &daySnapshot{
		date:      date,
		settings:  *settings,
		tags:      tags,
		schedules: schedules,
		overrides: resolver.IndexEntries(entries).ForDate(date),
	}, nil
}

func (d *daySnapshot) materialize() []resolver.SlotTag {
	return resolver.MaterializeDay(d.date, d.settings.TotalSlots(), d.settings.Interval, d.schedules, d.overrides)
}

// resolveDate defaults an empty date to today and rejects malformed ones.
func resolveDate(date string, now time.Time) (string, error) {
	if date == "" {
		return domain.FormatDate(now), nil
	}
	if _, err := domain.ParseDate(date); err != nil {
		return "", fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, date)
	}
	return date, nil
}

// requireTag checks that id names a stored tag.
func requireTag(ctx context.Context, tags repository.TagRepo, id string) error {
	if _, err := tags.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownTag, id)
		}
		return err
	}
	return nil
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateColor(c string) (string, error) {
	if !colorPattern.MatchString(c) {
		return "", fmt.Errorf("%w: color %q is not #RRGGBB", ErrInvalidInput, c)
	}
	return strings.ToUpper(c), nil
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a display name into a tag id: "Deep Work" becomes "deep-work".
func slugify(name string) string {
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "tag"
	}
	return slug
}

func validateWeekdays(days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday %d outside 0..6", ErrInvalidInput, d)
		}
	}
	return nil
}

func validateMinute(name string, m *int) error {
	if m == nil {
		return nil
	}
	if *m < 0 || *m > domain.MinutesPerDay {
		return fmt.Errorf("%w: %s %d outside 0..%d", ErrInvalidInput, name, *m, domain.MinutesPerDay)
	}
	return nil
}
