package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type dayService struct {
	repos    snapshotRepos
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewDayService(
	tags repository.TagRepo,
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DayService {
	return &dayService{
		repos:    snapshotRepos{tags: tags, schedules: schedules, entries: entries, settings: settings},
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Day materializes a date from scratch on every call.
func (s *dayService) Day(ctx context.Context, req app.DayRequest) (*app.DayResponse, error) {
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	date, err := resolveDate(req.Date, now)
	if err != nil {
		return nil, err
	}

	snap, err := s.repos.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	resp := &app.DayResponse{
		Date:        date,
		Settings:    snap.settings,
		Tagged:      snap.materialize(),
		CurrentSlot: -1,
	}
	resp.Stats = resolver.ComputeDayStats(date, resp.Tagged, snap.settings.Interval, snap.tags)

	if date == domain.FormatDate(now) {
		resp.CurrentSlot = resolver.CurrentSlot(now, snap.settings.Interval)
		resp.PreviousLogged = resolver.IsPreviousSlotLogged(now, snap.settings.Interval, snap.schedules,
			resolver.EntryIndex{date: snap.overrides})
	}

	byID := domain.TagIndex(snap.tags)
	tagged := make(map[int]string, len(resp.Tagged))
	for _, st := range resp.Tagged {
		tagged[st.Slot] = st.TagID
	}

	interval := snap.settings.Interval
	resp.Slots = make([]app.SlotView, 0, snap.settings.TotalSlots())
	for slot := 0; slot < snap.settings.TotalSlots(); slot++ {
		view := app.SlotView{
			Slot:        slot,
			StartMinute: slot * interval,
			EndMinute:   (slot + 1) * interval,
			TagID:       tagged[slot],
			Override:    snap.overrides[slot],
			IsCurrent:   slot == resp.CurrentSlot,
		}
		if !view.Override.IsSet() {
			view.Override = domain.Inherit()
		}
		view.Scheduled, _ = resolver.ResolveScheduledTag(date, slot, interval, snap.schedules)
		if view.TagID != "" {
			view.TagName, view.TagColor = domain.UnknownTagName, domain.UnknownTagColor
			if t, ok := byID[view.TagID]; ok {
				view.TagName, view.TagColor = t.Name, t.Color
			}
		}
		resp.Slots = append(resp.Slots, view)
	}
	return resp, nil
}

func (s *dayService) SetEntry(ctx context.Context, date string, slot int, tagID string) (*app.SetEntriesResult, error) {
	return s.mutate(ctx, "set-entry", date, []int{slot}, tagID,
		func(entries []domain.TimeEntry, date string, interval int, schedules []domain.DailySchedule) []domain.TimeEntry {
			return resolver.SetEntry(entries, date, slot, tagID, interval, schedules)
		})
}

func (s *dayService) SetEntries(ctx context.Context, req app.SetEntriesRequest) (*app.SetEntriesResult, error) {
	return s.mutate(ctx, "set-entries", req.Date, req.Slots, req.TagID,
		func(entries []domain.TimeEntry, date string, interval int, schedules []domain.DailySchedule) []domain.TimeEntry {
			return resolver.SetEntriesForSlots(entries, date, req.Slots, req.TagID, interval, schedules)
		})
}

type entryMutation func(entries []domain.TimeEntry, date string, interval int, schedules []domain.DailySchedule) []domain.TimeEntry

// mutate applies one override decision and persists the resulting collection
// in a single transaction. An empty slot list writes nothing.
func (s *dayService) mutate(ctx context.Context, name, date string, slots []int, tagID string, apply entryMutation) (res *app.SetEntriesResult, err error) {
	fields := map[string]any{"slots": len(slots), "tag": tagID}
	defer track(ctx, s.observer, name, fields)(&err)

	date, err = resolveDate(date, s.now())
	if err != nil {
		return nil, err
	}
	fields["date"] = date

	res = &app.SetEntriesResult{Date: date}
	if len(slots) == 0 {
		return res, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings, err := repository.NewSQLiteSettingsRepo(tx).Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		for _, slot := range slots {
			if slot < 0 || slot >= settings.TotalSlots() {
				return fmt.Errorf("%w: slot %d outside 0..%d", ErrInvalidInput, slot, settings.TotalSlots()-1)
			}
		}
		if tagID != "" {
			if err := requireTag(ctx, repository.NewSQLiteTagRepo(tx), tagID); err != nil {
				return err
			}
		}

		schedules, err := repository.NewSQLiteScheduleRepo(tx).List(ctx)
		if err != nil {
			return fmt.Errorf("loading schedules: %w", err)
		}
		entryRepo := repository.NewSQLiteEntryRepo(tx)
		entries, err := entryRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("loading entries: %w", err)
		}

		before := resolver.IndexEntries(entries).ForDate(date)
		next := apply(entries, date, settings.Interval, schedules)
		after := resolver.IndexEntries(next).ForDate(date)

		seen := make(map[int]bool, len(slots))
		for _, slot := range slots {
			if seen[slot] {
				continue
			}
			seen[slot] = true
			res.Slots = append(res.Slots, slot)
			was, _ := resolver.ResolveEffectiveTag(date, slot, settings.Interval, schedules, before)
			is, _ := resolver.ResolveEffectiveTag(date, slot, settings.Interval, schedules, after)
			if was != is {
				res.Changed++
			}
		}

		return entryRepo.ReplaceAll(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	fields["changed"] = res.Changed
	return res, nil
}

func (s *dayService) Override(ctx context.Context, date string, slot int) (domain.Override, error) {
	date, err := resolveDate(date, s.now())
	if err != nil {
		return domain.Override{}, err
	}
	entries, err := s.repos.entries.ListByDate(ctx, date)
	if err != nil {
		return domain.Override{}, fmt.Errorf("loading entries: %w", err)
	}
	return resolver.OverrideFor(entries, date, slot), nil
}
