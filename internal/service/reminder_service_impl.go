package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type reminderService struct {
	schedules repository.ScheduleRepo
	entries   repository.EntryRepo
	settings  repository.SettingsRepo
}

func NewReminderService(schedules repository.ScheduleRepo, entries repository.EntryRepo, settings repository.SettingsRepo) ReminderService {
	return &reminderService{schedules: schedules, entries: entries, settings: settings}
}

func (s *reminderService) Settings(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

// PreviousSlotLogged reports whether the slot before now resolves to a tag.
func (s *reminderService) PreviousSlotLogged(ctx context.Context, now time.Time) (bool, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("loading settings: %w", err)
	}
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return false, fmt.Errorf("loading schedules: %w", err)
	}
	today := domain.FormatDate(now)
	entries, err := s.entries.ListByDate(ctx, today)
	if err != nil {
		return false, fmt.Errorf("loading entries: %w", err)
	}
	return resolver.IsPreviousSlotLogged(now, settings.Interval, schedules, resolver.IndexEntries(entries)), nil
}
