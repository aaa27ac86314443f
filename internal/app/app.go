package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/shravanmandadapu71-sys/parkx/internal/config"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/handler"
	"github.com/shravanmandadapu71-sys/parkx/internal/inventory"
	"github.com/shravanmandadapu71-sys/parkx/internal/middleware"
	"github.com/shravanmandadapu71-sys/parkx/internal/notification"
	"github.com/shravanmandadapu71-sys/parkx/internal/pricing"
	"github.com/shravanmandadapu71-sys/parkx/internal/registry"
	"github.com/shravanmandadapu71-sys/parkx/internal/repository"
	"github.com/shravanmandadapu71-sys/parkx/internal/router"
	"github.com/shravanmandadapu71-sys/parkx/internal/scheduler"
	"github.com/shravanmandadapu71-sys/parkx/internal/service"
	"github.com/shravanmandadapu71-sys/parkx/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	registry   *service.RegistryService
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ParkX",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Archive.Enabled {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "archive database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	var archive ports.Archive = repository.NewNoopArchive()
	if a.db != nil {
		repo := repository.NewArchiveRepo(a.db)
		archive = repo

		archived, err := repo.ListBookingsByStates(context.Background(), []domain.BookingState{
			domain.BookingStateExpired, domain.BookingStateCancelled,
		})
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "booking archive ready",
			logger.Int("terminal_bookings", len(archived)),
		)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.OpsChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	inv := inventory.New(a.log)
	pricer := pricing.New(pricing.Rates{
		HourlyRate: a.cfg.Pricing.HourlyRate,
		Daily:      a.cfg.Pricing.Daily,
		Weekly:     a.cfg.Pricing.Weekly,
		Monthly:    a.cfg.Pricing.Monthly,
		Yearly:     a.cfg.Pricing.Yearly,
	})
	verifier := registry.NewDocumentVerifier(a.log)

	bookingService := service.NewBookingService(inv, pricer, n, archive, service.BookingConfig{
		GracePeriod: a.cfg.Booking.GracePeriod,
		Retention:   a.cfg.Booking.Retention,
		Durations: service.PlanDurations{
			Daily:   a.cfg.Booking.DailyLength,
			Weekly:  a.cfg.Booking.WeeklyLength,
			Monthly: a.cfg.Booking.MonthlyLength,
			Yearly:  a.cfg.Booking.YearlyLength,
		},
	}, a.log)
	registryService := service.NewRegistryService(inv, verifier, archive, a.log)
	reservationService := service.NewReservationService(inv, bookingService)
	a.registry = registryService

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(registryService, reservationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Demo.SeedPlots {
		a.seedDemoPlots(ctx)
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "archive database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
