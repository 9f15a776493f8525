package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{settings: settings, observer: useCaseObserverOrNoop(observers)}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, patch domain.SettingsPatch) (settings *domain.Settings, err error) {
	defer track(ctx, s.observer, "update-settings", nil)(&err)

	settings, err = s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Interval != nil {
		if !domain.ValidIntervals[*patch.Interval] {
			return nil, fmt.Errorf("%w: interval must be 15 or 30 minutes, got %d", ErrInvalidInput, *patch.Interval)
		}
		settings.Interval = *patch.Interval
	}
	if patch.ClockFormat != nil {
		if !domain.ValidClockFormats[*patch.ClockFormat] {
			return nil, fmt.Errorf("%w: clock format must be 12 or 24, got %d", ErrInvalidInput, *patch.ClockFormat)
		}
		settings.ClockFormat = *patch.ClockFormat
	}
	if patch.NotificationMode != nil {
		mode := *patch.NotificationMode
		if !domain.ValidNotificationModes[mode] {
			return nil, fmt.Errorf("%w: notification mode must be off, notify or sound, got %q", ErrInvalidInput, mode)
		}
		settings.NotificationMode = mode
	}

	if err = s.settings.Upsert(ctx, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}
