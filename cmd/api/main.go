package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "finance-dashboard/internal/adapter/http"
	appmw "finance-dashboard/internal/adapter/middleware"
	"finance-dashboard/internal/adapter/repository/mysql"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/domain/event"
	"finance-dashboard/internal/infrastructure/broker"
	"finance-dashboard/internal/infrastructure/cache"
	"finance-dashboard/internal/infrastructure/db"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/usecase/dashboard"
	debtuc "finance-dashboard/internal/usecase/debt"
	goaluc "finance-dashboard/internal/usecase/goal"
	txuc "finance-dashboard/internal/usecase/transaction"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("api stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(logging.New(cfg.LogLevel, cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), logging.GormLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	var events event.Publisher
	if cfg.AMQPURL != "" {
		pub, err := broker.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer pub.Close()
		events = pub
	} else {
		slog.Info("event publishing disabled: AMQP_URL not set")
	}

	debtRepo := mysql.NewDebtRepository(gdb)
	goalRepo := mysql.NewGoalRepository(gdb)
	txRepo := mysql.NewTransactionRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	debts := debtuc.NewUsecase(debtRepo, tx, events)
	goals := goaluc.NewUsecase(goalRepo, tx, events)
	txs := txuc.NewUsecase(txRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e, httpadp.Handlers{
		Health: httpadp.NewHandler(
			httpadp.Check{Name: cfg.DBDriver, Ping: func(ctx context.Context) error { return db.Ping(ctx, gdb) }},
			httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Debts:        httpadp.NewDebtHandler(debts),
		Goals:        httpadp.NewGoalHandler(goals),
		Transactions: httpadp.NewTransactionHandler(txs),
		Dashboard:    httpadp.NewDashboardHandler(dashboard.NewUsecase(txs, debts, goals)),
	}, appmw.UserScope(), appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	addr := ":" + cfg.AppPort
	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr, "db_driver", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
