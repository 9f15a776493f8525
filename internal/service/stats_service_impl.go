package service

import (
	"context"
	"time"

	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type statsService struct {
	repos snapshotRepos
	now   func() time.Time
}

func NewStatsService(
	tags repository.TagRepo,
	schedules repository.ScheduleRepo,
	entries repository.EntryRepo,
	settings repository.SettingsRepo,
) StatsService {
	return &statsService{
		repos: snapshotRepos{tags: tags, schedules: schedules, entries: entries, settings: settings},
		now:   time.Now,
	}
}

func (s *statsService) DayStats(ctx context.Context, date string) (*resolver.DayStats, error) {
	date, err := resolveDate(date, s.now())
	if err != nil {
		return nil, err
	}
	snap, err := s.repos.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}
	stats := resolver.ComputeDayStats(date, snap.materialize(), snap.settings.Interval, snap.tags)
	return &stats, nil
}
