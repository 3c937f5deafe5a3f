package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caroogle/bob/internal/config"
	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/internal/notify"
	"github.com/caroogle/bob/internal/store"
	"github.com/caroogle/bob/pkg/extract"
	"github.com/caroogle/bob/pkg/logger"
	"github.com/caroogle/bob/pkg/refdata"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

// app holds the wired dependencies shared by serve and the one-shot runs.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	store      *store.PostgresStore
	tables     *refdata.Tables
	normalizer *extract.Normalizer
	notifier   notify.Notifier
	engine     *engine.Engine
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

func loadTables(path string) (*refdata.Tables, error) {
	if path == "" {
		return refdata.Default()
	}
	return refdata.Load(path)
}

func newApp(ctx context.Context) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	tables, err := loadTables(cfg.Matching.ReferenceData)
	if err != nil {
		return nil, fmt.Errorf("loading reference data: %w", err)
	}
	log.Info("reference data loaded", "version", tables.Version(), "makes", len(tables.Makes()))

	loc, err := cfg.Dealer.Location()
	if err != nil {
		return nil, err
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	a := &app{
		cfg:        cfg,
		log:        log,
		store:      st,
		tables:     tables,
		normalizer: extract.NewNormalizer(tables),
		notifier:   newNotifier(&cfg.Notifications.Slack, log),
	}
	a.engine = engine.NewEngine(st, a.normalizer, a.notifier,
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithDealer(cfg.Dealer.ID, loc),
		engine.WithWindows(cfg.Matching.YearWindow, cfg.Matching.KmWindow),
		engine.WithScoring(scoringConfig(&cfg.Matching)),
		engine.WithConcurrency(cfg.Matching.Concurrency),
		engine.WithBatchSize(cfg.Matching.BatchSize),
		engine.WithFingerprintExpiry(time.Duration(cfg.Fingerprints.ExpiryDays)*24*time.Hour),
	)
	return a, nil
}

func (a *app) close() {
	a.store.Close()
}

func newNotifier(cfg *config.SlackConfig, log *slog.Logger) notify.Notifier {
	if !cfg.Enabled || cfg.WebhookURL == "" {
		log.Info("slack notifications disabled")
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	return notify.NewSlackNotifier(cfg.WebhookURL,
		notify.WithChannel(cfg.Channel),
		notify.WithRateLimit(cfg.PerSecond, cfg.Burst),
		notify.WithLogger(logger.Component(log, "notify")),
	)
}

// scoringConfig builds the shadow-promotion scoring policy from config.
func scoringConfig(m *config.MatchingConfig) score.Config {
	c := score.DefaultConfig(domain.MatchPlatformClass)
	c.Weights = score.Weights{Km: m.Weights.Km, Profit: m.Weights.Profit}
	c.Reference = score.ReferenceMode(m.ReferenceMode)
	c.ReferenceProfit = m.ReferenceProfit
	c.MinUnderBuy = m.MinUnderBuy
	return c
}
