package cli

import "github.com/alexanderramin/slotlog/internal/app"

func (a *App) logSlotsUseCase() app.LogSlotsUseCase {
	if a.LogSlots != nil {
		return a.LogSlots
	}
	if a.Days == nil {
		return nil
	}
	return a.Days
}

func (a *App) snapshotUseCase() app.SnapshotUseCase {
	if a.Snapshot != nil {
		return a.Snapshot
	}
	if a.Snapshots == nil {
		return nil
	}
	return a.Snapshots
}
