package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/inventory-tracker/internal/checker"
	"github.com/donaldgifford/inventory-tracker/internal/config"
	"github.com/donaldgifford/inventory-tracker/internal/engine"
	"github.com/donaldgifford/inventory-tracker/internal/lock"
	"github.com/donaldgifford/inventory-tracker/internal/notify"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	"github.com/donaldgifford/inventory-tracker/pkg/logger"
	score "github.com/donaldgifford/inventory-tracker/pkg/scorer"
)

// app holds the wired dependencies shared by serve and check.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	store  *store.PostgresStore
	engine *engine.Engine

	// lockPing is set when the lock backend is remote.
	lockPing interface {
		Ping(ctx context.Context) error
	}

	closers []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.store = pg
	a.closers = append(a.closers, pg.Close)

	locker, err := a.newLocker(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	chk, err := a.newChecker()
	if err != nil {
		a.Close()
		return nil, err
	}

	w := cfg.Scoring.Weights
	a.engine = engine.NewEngine(pg, chk, a.newNotifier(),
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithLocker(locker),
		engine.WithLockTTL(cfg.Lock.TTL),
		engine.WithWeights(score.Weights{
			Availability:   w.Availability,
			Reliability:    w.Reliability,
			PriceStability: w.PriceStability,
			Delivery:       w.Delivery,
		}),
		engine.WithHistoryWindowDays(cfg.Scoring.HistoryWindowDays),
		engine.WithPriceChangeThreshold(cfg.Checker.PriceChangeThreshold),
		engine.WithPriceChangeNotifications(cfg.Notifications.Discord.NotifyPriceChanges),
		engine.WithBatchDelay(cfg.Checker.BatchDelay),
		engine.WithConcurrency(cfg.Checker.Concurrency),
		engine.WithBatchBudget(cfg.Schedule.BatchBudget),
		engine.WithScheduleLimits(cfg.Schedule.PriorityLimit, cfg.Schedule.RoutineLimit),
		engine.WithStaleAfter(cfg.Schedule.StaleAfter),
		engine.WithPriorityWindow(cfg.Schedule.PriorityWindow),
	)

	return a, nil
}

func (a *app) newLocker(ctx context.Context) (lock.Locker, error) {
	if a.cfg.Lock.Backend != "redis" {
		return lock.NewMemoryLocker(), nil
	}

	rc := a.cfg.Lock.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })

	rl := lock.NewRedisLocker(client,
		lock.WithKeyPrefix(rc.KeyPrefix),
		lock.WithLogger(logger.Component(a.log, "lock")),
	)
	if err := rl.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", rc.Addr, err)
	}
	a.lockPing = rl
	a.log.Info("using redis product locks", "addr", rc.Addr)
	return rl, nil
}

func (a *app) newChecker() (*checker.Checker, error) {
	cc := a.cfg.Checker

	// Deadlines come from each request's context so a store's own
	// timeout_seconds is never cut short by a client-wide limit.
	opts := []checker.Option{
		checker.WithHTTPClient(&http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}),
		checker.WithDefaultTimeout(cc.DefaultTimeout),
		checker.WithUserAgent(cc.UserAgent),
		checker.WithThrottle(checker.NewThrottle()),
		checker.WithLogger(logger.Component(a.log, "checker")),
	}
	if cc.OptimisticDefault != nil {
		opts = append(opts, checker.WithOptimisticDefault(*cc.OptimisticDefault))
	}
	if cc.MaxBodyBytes > 0 {
		opts = append(opts, checker.WithMaxBodyBytes(cc.MaxBodyBytes))
	}

	if cc.Browser.Enabled {
		r, err := checker.NewRodRenderer(checker.BrowserOptions{
			ControlURL: cc.Browser.ControlURL,
			Bin:        cc.Browser.Bin,
			Timeout:    cc.Browser.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("starting browser: %w", err)
		}
		a.closers = append(a.closers, func() { _ = r.Close() })
		opts = append(opts, checker.WithRenderer(r))
	}

	return checker.New(opts...), nil
}

func (a *app) newNotifier() notify.Notifier {
	d := a.cfg.Notifications.Discord
	if d.Enabled && d.WebhookURL != "" {
		return notify.NewDiscordNotifier(d.WebhookURL)
	}
	return notify.NewNoOpNotifier(logger.Component(a.log, "notify"))
}

func (a *app) newScheduler() (*engine.Scheduler, error) {
	return engine.NewScheduler(
		a.engine,
		a.store,
		a.cfg.Schedule.CheckInterval,
		a.cfg.Schedule.StaleJobAfter,
		logger.Component(a.log, "scheduler"),
	)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
