package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TemirB/bytebazaar/internal/admin"
	"github.com/TemirB/bytebazaar/internal/application/service"
	"github.com/TemirB/bytebazaar/internal/cache"
	"github.com/TemirB/bytebazaar/internal/catalog"
	"github.com/TemirB/bytebazaar/internal/config"
	"github.com/TemirB/bytebazaar/internal/database"
	"github.com/TemirB/bytebazaar/internal/httpapi"
	"github.com/TemirB/bytebazaar/internal/notify"
	"github.com/TemirB/bytebazaar/internal/observability"
	"github.com/TemirB/bytebazaar/internal/order"
	"github.com/TemirB/bytebazaar/internal/pkg/breaker"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// storefront hash-password <password> prints a value for ADMIN_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := admin.HashPassword(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Storefront stopped", zap.Error(err))
	}
	logger.Info("Storefront stopped")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Dev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	metrics := observability.NewInmem(500)

	store, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	history := order.NewHistory()
	sim := order.NewSimulator(store, history, order.Config{
		TaxRate:  cfg.Checkout.TaxRate,
		Delay:    cfg.Checkout.Delay,
		IDPrefix: cfg.Checkout.IDPrefix,
	}, logger.Named("order"))

	dispatcher := notify.NewDispatcher(
		newPublisher(ctx, cfg, logger),
		breaker.New(cfg.Breaker),
		cfg.Retry,
		cfg.Kafka.Workers,
		logger.Named("notify"),
		metrics,
	)

	svc := service.NewService(store, sim, dispatcher, cfg.Checkout.TaxRate, logger.Named("checkout"), metrics)
	sessions, err := cache.New(cfg.SessionCap, svc.NewSession)
	if err != nil {
		return err
	}
	logger.Info("Checkout ready",
		zap.Int("session_cap", sessions.Cap()),
		zap.String("tax_rate", cfg.Checkout.TaxRate.String()),
		zap.Duration("delay", cfg.Checkout.Delay),
	)

	deps := httpapi.Deps{
		Catalog:  store,
		Sessions: sessions,
		Stats:    metrics,
	}
	if cfg.AdminEnabled() {
		verifier, err := admin.NewStaticVerifier(cfg.Admin.Email, cfg.Admin.PasswordHash)
		if err != nil {
			return err
		}
		deps.Orders = admin.NewReadModel(history)
		deps.Verifier = verifier
		deps.Tokens = admin.NewTokens([]byte(cfg.Admin.TokenSecret), cfg.Admin.TokenTTL)
	} else {
		logger.Info("Admin endpoints disabled: ADMIN_PASSWORD_HASH is not set")
	}
	srv := httpapi.New(deps, logger.Named("http"), metrics)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		return srv.ListenAndServe(gctx, cfg.HTTPAddr)
	})
	g.Go(func() error {
		reportStats(gctx, metrics, sessions.Len, history.Len, logger)
		return nil
	})
	err = g.Wait()

	// Placements still in flight may publish after this point; those
	// notifications are dropped and logged.
	return errors.Join(err, dispatcher.Close())
}

func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (*catalog.Store, error) {
	seed, err := catalog.FileSource(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if !cfg.PgEnabled() {
		return catalog.Load(ctx, seed, logger.Named("catalog"))
	}

	pool, err := database.Connect(ctx, cfg.DSN(), logger.Named("pg"))
	if err != nil {
		return nil, err
	}
	// The catalog is read once; the pool is not needed afterwards.
	defer pool.Close()

	repo := database.New(pool, cfg.Pg.Schema)
	if cfg.Pg.SeedCatalog {
		if err := seedDatabase(ctx, repo, seed); err != nil {
			return nil, err
		}
		logger.Info("Catalog seeded into Postgres", zap.String("schema", cfg.Pg.Schema))
	}
	return catalog.Load(ctx, repo, logger.Named("catalog"))
}

func seedDatabase(ctx context.Context, repo *database.Repo, seed *catalog.YAMLSource) error {
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	cats, err := seed.LoadCategories(ctx)
	if err != nil {
		return err
	}
	products, err := seed.LoadProducts(ctx)
	if err != nil {
		return err
	}
	return repo.SeedCatalog(ctx, cats, products)
}

func newPublisher(ctx context.Context, cfg config.Config, logger *zap.Logger) notify.Publisher {
	if !cfg.KafkaEnabled() {
		return notify.NewLogPublisher(logger.Named("notify"))
	}

	topicCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := notify.EnsureTopic(topicCtx, cfg.Kafka, logger); err != nil {
		logger.Warn("Kafka topic not ready, publishing anyway", zap.Error(err))
	}
	w := notify.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	return notify.NewKafkaPublisher(w, cfg.Kafka.Topic)
}

func reportStats(ctx context.Context, m *observability.Inmem, sessions, orders func() int, logger *zap.Logger) {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			_, totals := m.Snapshot()
			logger.Info("Storefront stats",
				zap.Int("sessions", sessions()),
				zap.Int("orders", orders()),
				zap.Any("checkouts", totals.Checkouts),
				zap.Int("notify_ok", totals.NotifyOK),
				zap.Int("notify_failed", totals.NotifyFailed),
			)
		}
	}
}
