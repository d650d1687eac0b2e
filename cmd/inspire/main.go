package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inspire-tracker/internal/bot"
	"inspire-tracker/internal/config"
	"inspire-tracker/internal/logger"
	"inspire-tracker/internal/repository"
	"inspire-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	root, closeStore, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		lg.Fatal("open store", "backend", cfg.StoreBackend, "err", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			lg.Warn("close store", "err", err)
		}
	}()

	services := bot.Services{
		Auth:     service.NewAuthService(lg.With("component", "auth"), cfg.BcryptCost),
		Goals:    service.NewGoalService(lg.With("component", "goals")),
		CGPA:     service.NewCGPAService(lg.With("component", "cgpa")),
		Users:    service.NewUserService(lg.With("component", "users")),
		Reminder: service.NewReminderService(cfg.PendingHorizonDays),
	}

	telegramBot, err := bot.New(&cfg, root, services, lg.With("component", "bot"))
	if err != nil {
		lg.Fatal("create bot", "err", err)
	}

	scheduler := service.NewSchedulerService(cfg.Location(), lg.With("component", "scheduler"))
	entry, err := scheduler.ScheduleReports(cfg.ReportTime, cfg.ReportInterval, func() {
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := telegramBot.SendDailyReports(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			lg.Error("daily reports", "err", err)
		}
	})
	if err != nil {
		lg.Fatal("schedule reports", "err", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	lg.Info("inspire tracker started", "backend", cfg.StoreBackend, "next_report", scheduler.Next(entry))
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped", "err", err)
	}
	lg.Info("shutdown complete")
}
