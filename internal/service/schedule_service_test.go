package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newScheduleService(env *testEnv) *scheduleService {
	svc := NewScheduleService(env.schedules, env.uow).(*scheduleService)
	svc.now = clock
	return svc
}

func TestScheduleService_AddFillsDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := newScheduleService(env)

	s, err := svc.Add(context.Background(), domain.RawSchedule{
		TagID:       strPtr("sleep"),
		StartMinute: intPtr(1320),
		EndMinute:   intPtr(360),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, domain.AllWeekdays, s.Weekdays)
	assert.Equal(t, monday, s.StartsOn)
	assert.True(t, s.IsOvernight())

	stored, err := env.schedules.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, *s, *stored)
}

func TestScheduleService_AddValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newScheduleService(env)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  domain.RawSchedule
		want error
	}{
		{"missing tag", domain.RawSchedule{}, ErrInvalidInput},
		{"unknown tag", domain.RawSchedule{TagID: strPtr("ghost")}, ErrUnknownTag},
		{"minute too large", domain.RawSchedule{TagID: strPtr("work"), EndMinute: intPtr(1441)}, ErrInvalidInput},
		{"weekday out of range", domain.RawSchedule{TagID: strPtr("work"), Weekdays: []int{7}}, ErrInvalidInput},
		{"no weekdays", domain.RawSchedule{TagID: strPtr("work"), Weekdays: []int{}}, ErrInvalidInput},
		{"bad start date", domain.RawSchedule{TagID: strPtr("work"), StartsOn: strPtr("soon")}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestScheduleService_UpdateMergesAndKeepsPosition(t *testing.T) {
	env := newTestEnv(t)
	svc := newScheduleService(env)
	ctx := context.Background()

	env.addSchedule(t, testutil.NewTestSchedule("work", 540, 1020, testutil.WithScheduleID("office")))
	env.addSchedule(t, testutil.NewTestSchedule("break", 720, 780, testutil.WithScheduleID("lunch")))

	updated, err := svc.Update(ctx, "office", domain.SchedulePatch{
		EndMinute: intPtr(960),
		Weekdays:  []int{5, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DailySchedule{
		ID:          "office",
		TagID:       "work",
		StartMinute: 540,
		EndMinute:   960,
		Weekdays:    []int{1, 5},
		StartsOn:    testutil.TestStartsOn,
	}, *updated)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "office", all[0].ID)
	assert.Equal(t, "lunch", all[1].ID)
}

func TestScheduleService_UpdateErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := newScheduleService(env)
	ctx := context.Background()
	env.addSchedule(t, testutil.NewTestSchedule("work", 540, 1020, testutil.WithScheduleID("office")))

	_, err := svc.Update(ctx, "missing", domain.SchedulePatch{EndMinute: intPtr(600)})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(ctx, "office", domain.SchedulePatch{TagID: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrUnknownTag)

	_, err = svc.Update(ctx, "office", domain.SchedulePatch{StartMinute: intPtr(-5)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleService_Delete(t *testing.T) {
	env := newTestEnv(t)
	svc := newScheduleService(env)
	ctx := context.Background()
	env.addSchedule(t, testutil.NewTestSchedule("work", 540, 1020, testutil.WithScheduleID("office")))

	require.NoError(t, svc.Delete(ctx, "office"))
	assert.ErrorIs(t, svc.Delete(ctx, "office"), repository.ErrNotFound)
}
