package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/slotlog/internal/cli"
	"github.com/alexanderramin/slotlog/internal/config"
	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	// Wire repositories
	tagRepo := repository.NewSQLiteTagRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	dayService := service.NewDayService(tagRepo, scheduleRepo, entryRepo, settingsRepo, uow, observer)
	snapshotService := service.NewSnapshotService(tagRepo, scheduleRepo, entryRepo, settingsRepo, uow, observer)

	app := &cli.App{
		Tags:      service.NewTagService(tagRepo, uow, observer),
		Schedules: service.NewScheduleService(scheduleRepo, uow, observer),
		Days:      dayService,
		Stats:     service.NewStatsService(tagRepo, scheduleRepo, entryRepo, settingsRepo),
		Settings:  service.NewSettingsService(settingsRepo, observer),
		Reminders: service.NewReminderService(scheduleRepo, entryRepo, settingsRepo),
		Snapshots: snapshotService,

		LogSlots: dayService,
		Snapshot: snapshotService,

		Logger: logger,
	}

	// Prompts and the live view need a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
