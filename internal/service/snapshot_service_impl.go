package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const snapshotVersion = 1

// snapshotDoc is the YAML layout of an export file.
type snapshotDoc struct {
	Version    int                  `yaml:"version"`
	ExportedAt string               `yaml:"exported_at,omitempty"`
	Settings   *snapshotSettings    `yaml:"settings,omitempty"`
	Tags       []snapshotTag        `yaml:"tags"`
	Schedules  []domain.RawSchedule `yaml:"schedules"`
	Entries    []snapshotEntry      `yaml:"entries"`
}

type snapshotSettings struct {
	Interval         int    `yaml:"interval"`
	ClockFormat      int    `yaml:"clock_format"`
	NotificationMode string `yaml:"notification_mode"`
}

type snapshotTag struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// snapshotEntry stores an override as either a tag or clear: true. Older
// files mark clears with the reserved tag id instead.
type snapshotEntry struct {
	Date  string `yaml:"date"`
	Slot  int    `yaml:"slot"`
	Tag   string `yaml:"tag,omitempty"`
	Clear bool   `yaml:"clear,omitempty"`
}

func (e snapshotEntry) override() domain.Override {
	if e.Clear {
		return domain.Clear()
	}
	return domain.OverrideFromTagID(e.Tag)
}

type snapshotService struct {
	repos    snapshotRepos
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewSnapshotService(
	tags repository.TagRepo,
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		repos:    snapshotRepos{tags: tags, schedules: schedules, entries: entries, settings: settings},
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Export(ctx context.Context, w io.Writer) (counts *app.SnapshotCounts, err error) {
	fields := map[string]any{}
	defer track(ctx, s.observer, "export", fields)(&err)

	settings, err := s.repos.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	tags, err := s.repos.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tags: %w", err)
	}
	schedules, err := s.repos.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedules: %w", err)
	}
	entries, err := s.repos.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}

	doc := snapshotDoc{
		Version:    snapshotVersion,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		Settings: &snapshotSettings{
			Interval:         settings.Interval,
			ClockFormat:      settings.ClockFormat,
			NotificationMode: string(settings.NotificationMode),
		},
		Tags:      make([]snapshotTag, 0, len(tags)),
		Schedules: make([]domain.RawSchedule, 0, len(schedules)),
		Entries:   make([]snapshotEntry, 0, len(entries)),
	}
	for _, t := range tags {
		doc.Tags = append(doc.Tags, snapshotTag(t))
	}
	for _, sched := range schedules {
		doc.Schedules = append(doc.Schedules, sched.Raw())
	}
	for _, e := range entries {
		se := snapshotEntry{Date: e.Date, Slot: e.Slot}
		if e.Override.Kind == domain.OverrideClear {
			se.Clear = true
		} else {
			se.Tag = e.Override.TagID
		}
		doc.Entries = append(doc.Entries, se)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	counts = &app.SnapshotCounts{Tags: len(doc.Tags), Schedules: len(doc.Schedules), Entries: len(doc.Entries)}
	fields["tags"], fields["schedules"], fields["entries"] = counts.Tags, counts.Schedules, counts.Entries
	return counts, nil
}

// Import replaces all stored data with the snapshot read from r. Schedules go
// through the normalizer, so hand-edited or partial records are accepted. The
// replacement happens in one transaction.
func (s *snapshotService) Import(ctx context.Context, r io.Reader) (counts *app.SnapshotCounts, err error) {
	fields := map[string]any{}
	defer track(ctx, s.observer, "import", fields)(&err)

	var doc snapshotDoc
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: snapshot is empty", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: decoding snapshot: %v", ErrInvalidInput, err)
	}
	if doc.Version > snapshotVersion {
		return nil, fmt.Errorf("%w: snapshot version %d is newer than supported version %d", ErrInvalidInput, doc.Version, snapshotVersion)
	}

	tags, err := importTags(doc.Tags)
	if err != nil {
		return nil, err
	}
	entries, err := importEntries(doc.Entries)
	if err != nil {
		return nil, err
	}
	schedules := uniqueScheduleIDs(resolver.NormalizeSchedules(doc.Schedules, s.now()))

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tagRepo := repository.NewSQLiteTagRepo(tx)
		if err := tagRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, t := range tags {
			if err := tagRepo.Create(ctx, t); err != nil {
				return err
			}
		}

		scheduleRepo := repository.NewSQLiteScheduleRepo(tx)
		if err := scheduleRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, sched := range schedules {
			if err := scheduleRepo.Create(ctx, sched); err != nil {
				return err
			}
		}

		if err := repository.NewSQLiteEntryRepo(tx).ReplaceAll(ctx, entries); err != nil {
			return err
		}

		if doc.Settings != nil {
			settings := domain.Settings{
				Interval:         doc.Settings.Interval,
				ClockFormat:      doc.Settings.ClockFormat,
				NotificationMode: domain.NotificationMode(doc.Settings.NotificationMode),
			}
			settings.Normalize()
			if err := repository.NewSQLiteSettingsRepo(tx).Upsert(ctx, settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing snapshot: %w", err)
	}

	counts = &app.SnapshotCounts{Tags: len(tags), Schedules: len(schedules), Entries: len(entries)}
	fields["tags"], fields["schedules"], fields["entries"] = counts.Tags, counts.Schedules, counts.Entries
	return counts, nil
}

// uniqueScheduleIDs gives every schedule whose id was already used earlier in
// the file a fresh one. Both rules are kept.
func uniqueScheduleIDs(schedules []domain.DailySchedule) []domain.DailySchedule {
	seen := make(map[string]bool, len(schedules))
	for i := range schedules {
		if seen[schedules[i].ID] {
			schedules[i].ID = uuid.New().String()
		}
		seen[schedules[i].ID] = true
	}
	return schedules
}

func importTags(in []snapshotTag) ([]domain.Tag, error) {
	seen := make(map[string]bool, len(in))
	tags := make([]domain.Tag, 0, len(in))
	for i, t := range in {
		id := strings.TrimSpace(t.ID)
		if id == "" || id == domain.LegacyClearTagID {
			return nil, fmt.Errorf("%w: tag %d has no usable id", ErrInvalidInput, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate tag id %q", ErrInvalidInput, id)
		}
		seen[id] = true

		color, err := validateColor(t.Color)
		if err != nil {
			color = domain.TagPalette[i%len(domain.TagPalette)]
		}
		tags = append(tags, domain.Tag{ID: id, Name: domain.CoalesceStr(strings.TrimSpace(t.Name), id), Color: color})
	}
	return tags, nil
}

// importEntries keeps the last record for each (date, slot). Records with
// neither a tag nor a clear mark carry no decision and are dropped.
func importEntries(in []snapshotEntry) ([]domain.TimeEntry, error) {
	entries := make([]domain.TimeEntry, 0, len(in))
	for _, e := range in {
		if _, err := domain.ParseDate(e.Date); err != nil {
			return nil, fmt.Errorf("%w: entry date %q is not YYYY-MM-DD", ErrInvalidInput, e.Date)
		}
		if e.Slot < 0 {
			return nil, fmt.Errorf("%w: entry slot %d is negative", ErrInvalidInput, e.Slot)
		}
		o := e.override()
		if !o.IsSet() {
			continue
		}
		entries = append(entries, domain.TimeEntry{Date: e.Date, Slot: e.Slot, Override: o})
	}
	return entries, nil
}
