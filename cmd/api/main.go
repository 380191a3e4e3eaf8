package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/leadflow/internal/config"
	"github.com/xavierca1/leadflow/internal/infra/database"
	"github.com/xavierca1/leadflow/internal/infra/http/handlers"
	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
	"github.com/xavierca1/leadflow/internal/infra/logger"
	"github.com/xavierca1/leadflow/internal/infra/mail"
	"github.com/xavierca1/leadflow/internal/infra/persistence"
	"github.com/xavierca1/leadflow/internal/infra/queue"
	"github.com/xavierca1/leadflow/internal/infra/worker"
	"github.com/xavierca1/leadflow/internal/outreach"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

const (
	version    = "1.0.0"
	outboxSize = 1024
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	// 1. Local state
	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	snapshots, err := persistence.Open(cfg.StateBackend, cfg.StatePath)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	// 2. Remote mirror (optional)
	var (
		db       *sql.DB
		rabbitMQ *queue.RabbitMQ
		outbox   *queue.Outbox
	)
	storeOpts := []store.Option{store.WithLogger(log.With(zap.String("component", "store")))}

	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.CreateTables(ctx, db); err != nil {
			return err
		}
		mirror := database.NewMirror(db, cfg.OwnerUserID)

		var pub queue.Publisher = queue.DirectPublisher{Mirror: mirror}
		if cfg.AMQPURL != "" {
			rabbitMQ, err = queue.NewRabbitMQ(cfg.AMQPURL)
			if err != nil {
				return err
			}
			defer rabbitMQ.Close()
			pub = queue.NewProducer(rabbitMQ.Ch)

			syncWorker := queue.NewWorker(rabbitMQ.Ch, mirror, log, middleware.SyncErrorCounter("apply"))
			g.Go(func() error { return syncWorker.Start(ctx, queue.QueueName) })
		}

		outbox = queue.NewOutbox(pub, outboxSize, log,
			queue.WithFailureCounter(middleware.SyncErrorCounter("publish")),
			queue.WithDropCounter(middleware.OutboxDropCounter()))
		storeOpts = append(storeOpts, store.WithNotifier(outbox))
		g.Go(func() error { return outbox.Run(ctx) })
		log.Info("remote mirror enabled", zap.Bool("broker", rabbitMQ != nil))
	}

	st := store.New(seed.State(), storeOpts...)
	saved, err := snapshots.Load(ctx)
	switch {
	case err == nil:
		st.Restore(saved)
		log.Info("snapshot loaded", zap.String("backend", cfg.StateBackend), zap.String("path", cfg.StatePath))
	case errors.Is(err, persistence.ErrNoSnapshot):
		log.Info("starting with seed state", zap.String("backend", cfg.StateBackend))
	default:
		return err
	}

	snapshotWorker := worker.NewSnapshotWorker(st, snapshots, cfg.SnapshotInterval, log)
	g.Go(func() error {
		snapshotWorker.Start(ctx)
		return nil
	})

	// 3. UseCases
	var emailService usecase.EmailService
	if cfg.Mail.Enabled() {
		emailService = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}
	createLeadUC := usecase.NewCreateLeadUseCase(st, log)
	importLeadsUC := usecase.NewImportLeadsUseCase(st, log)
	createClientUC := usecase.NewCreateClientUseCase(st, st, log)
	createQuoteUC := usecase.NewCreateQuoteUseCase(st, log)
	messagesUC := usecase.NewGenerateMessageUseCase(st, st, st, log)
	addEventUC := usecase.NewAddTimelineEventUseCase(st, log)
	captureLandingUC := usecase.NewCaptureLandingUseCase(st, emailService, cfg.Mail.NotifyTo, cfg.LandingDelay, log)

	// 4. Handlers
	limiter := handlers.NewRateLimiter(10, time.Minute)
	g.Go(func() error {
		limiter.Run(ctx, 10*time.Minute)
		return nil
	})

	var (
		pinger handlers.Pinger
		broker handlers.Broker
	)
	if db != nil {
		pinger = db
	}
	if rabbitMQ != nil {
		broker = rabbitMQ
	}

	router := handlers.Router{
		Leads:       handlers.NewLeadHandler(st, createLeadUC, outreach.NewViewTracker()),
		Clients:     handlers.NewClientHandler(st, createClientUC, messagesUC, addEventUC),
		Quotes:      handlers.NewQuoteHandler(st, createQuoteUC),
		Profiles:    handlers.NewProfileHandler(st, messagesUC),
		Analytics:   handlers.NewAnalyticsHandler(st),
		Import:      handlers.NewImportHandler(importLeadsUC),
		Landing:     handlers.NewLandingHandler(st, captureLandingUC, limiter),
		Auth:        handlers.NewAuthHandler(st),
		Health:      handlers.NewHealthHandler(pinger, broker, version),
		CORSOrigins: cfg.CORSOrigins,
	}

	// 5. Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("leadflow api listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
