package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	now       func() time.Time
	observer  UseCaseObserver
}

func NewScheduleService(schedules repository.ScheduleRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		uow:       uow,
		now:       time.Now,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) List(ctx context.Context) ([]domain.DailySchedule, error) {
	return s.schedules.List(ctx)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.DailySchedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *scheduleService) Add(ctx context.Context, raw domain.RawSchedule) (sched *domain.DailySchedule, err error) {
	fields := map[string]any{}
	defer track(ctx, s.observer, "add-schedule", fields)(&err)

	if raw.TagID == nil || *raw.TagID == "" {
		return nil, fmt.Errorf("%w: schedule needs a tag", ErrInvalidInput)
	}
	if err := validateRawSchedule(raw); err != nil {
		return nil, err
	}

	normalized := resolver.NormalizeSchedule(raw, s.now())
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireTag(ctx, repository.NewSQLiteTagRepo(tx), normalized.TagID); err != nil {
			return err
		}
		return repository.NewSQLiteScheduleRepo(tx).Create(ctx, normalized)
	})
	if err != nil {
		return nil, err
	}
	fields["id"] = normalized.ID
	fields["tag"] = normalized.TagID
	return &normalized, nil
}

func (s *scheduleService) Update(ctx context.Context, id string, patch domain.SchedulePatch) (sched *domain.DailySchedule, err error) {
	defer track(ctx, s.observer, "update-schedule", map[string]any{"id": id})(&err)

	if patch.TagID != nil && *patch.TagID == "" {
		return nil, fmt.Errorf("%w: schedule needs a tag", ErrInvalidInput)
	}
	if err := validateRawSchedule(domain.RawSchedule{
		StartMinute: patch.StartMinute,
		EndMinute:   patch.EndMinute,
		Weekdays:    patch.Weekdays,
		StartsOn:    patch.StartsOn,
	}); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteScheduleRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.TagID != nil {
			if err := requireTag(ctx, repository.NewSQLiteTagRepo(tx), *patch.TagID); err != nil {
				return err
			}
		}
		merged := resolver.NormalizeSchedule(patch.Apply(*current), s.now())
		if err := repo.Update(ctx, merged); err != nil {
			return err
		}
		sched = &merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) (err error) {
	defer track(ctx, s.observer, "delete-schedule", map[string]any{"id": id})(&err)
	return s.schedules.Delete(ctx, id)
}

// validateRawSchedule rejects user input the normalizer would silently repair.
func validateRawSchedule(raw domain.RawSchedule) error {
	if err := validateMinute("start minute", raw.StartMinute); err != nil {
		return err
	}
	if err := validateMinute("end minute", raw.EndMinute); err != nil {
		return err
	}
	if raw.Weekdays != nil && len(raw.Weekdays) == 0 {
		return fmt.Errorf("%w: schedule needs at least one weekday", ErrInvalidInput)
	}
	if err := validateWeekdays(raw.Weekdays); err != nil {
		return err
	}
	if raw.StartsOn != nil {
		if _, err := domain.ParseDate(*raw.StartsOn); err != nil {
			return fmt.Errorf("%w: start date %q is not YYYY-MM-DD", ErrInvalidInput, *raw.StartsOn)
		}
	}
	return nil
}
