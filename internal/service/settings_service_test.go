package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_UpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settings)
	ctx := context.Background()

	interval := 15
	got, err := svc.Update(ctx, domain.SettingsPatch{Interval: &interval})
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Interval: 15, ClockFormat: domain.Clock24, NotificationMode: domain.NotifyAlert}, *got)

	mode := domain.NotifySound
	clockFmt := domain.Clock12
	got, err = svc.Update(ctx, domain.SettingsPatch{NotificationMode: &mode, ClockFormat: &clockFmt})
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Interval: 15, ClockFormat: domain.Clock12, NotificationMode: domain.NotifySound}, *got)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *got, *stored)
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settings)
	ctx := context.Background()

	interval := 20
	_, err := svc.Update(ctx, domain.SettingsPatch{Interval: &interval})
	assert.ErrorIs(t, err, ErrInvalidInput)

	clockFmt := 13
	_, err = svc.Update(ctx, domain.SettingsPatch{ClockFormat: &clockFmt})
	assert.ErrorIs(t, err, ErrInvalidInput)

	mode := domain.NotificationMode("browser")
	_, err = svc.Update(ctx, domain.SettingsPatch{NotificationMode: &mode})
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *stored)
}
