package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_PreviousSlotLogged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewReminderService(env.schedules, env.entries, env.settings)
	env.addSchedule(t, testutil.NewTestSchedule("work", 540, 1020))

	logged, err := svc.PreviousSlotLogged(ctx, fixedNow)
	require.NoError(t, err)
	assert.True(t, logged, "09:00 is scheduled work")

	nineOhFive := time.Date(2026, 10, 12, 9, 5, 0, 0, time.Local)
	logged, err = svc.PreviousSlotLogged(ctx, nineOhFive)
	require.NoError(t, err)
	assert.False(t, logged, "08:30 is empty")

	require.NoError(t, env.entries.ReplaceAll(ctx, []domain.TimeEntry{
		testutil.NewTestEntry(monday, 17, domain.Assign("break")),
		testutil.NewTestEntry(monday, 18, domain.Clear()),
	}))
	logged, err = svc.PreviousSlotLogged(ctx, nineOhFive)
	require.NoError(t, err)
	assert.True(t, logged)

	logged, err = svc.PreviousSlotLogged(ctx, fixedNow)
	require.NoError(t, err)
	assert.False(t, logged, "09:00 was cleared")
}
