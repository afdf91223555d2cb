// Package engine orchestrates availability checks: it runs the checker,
// applies results to the inventory state, tracks store health, recomputes
// scores, writes the audit log and emits stock events.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/inventory-tracker/internal/lock"
	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/notify"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	"github.com/donaldgifford/inventory-tracker/internal/telemetry"
	score "github.com/donaldgifford/inventory-tracker/pkg/scorer"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const (
	defaultBatchDelay        = time.Second
	defaultLockTTL           = 2 * time.Minute
	defaultHistoryWindowDays = 30
	defaultPriorityLimit     = 20
	defaultRoutineLimit      = 30
	defaultStaleAfter        = 24 * time.Hour
	defaultPriorityWindow    = 7 * 24 * time.Hour
	defaultAlternativesLimit = 5

	// persistTimeout bounds saving a finished check once the caller's
	// context is gone.
	persistTimeout = 10 * time.Second
)

// Checker queries a store for one product. Implementations report failures
// in the result instead of returning errors.
type Checker interface {
	Check(ctx context.Context, p *domain.Product, cfg *domain.StoreAPIConfig) domain.CheckResult
}

// Engine runs availability checks and everything that follows from them.
type Engine struct {
	store    store.Store
	checker  Checker
	notifier notify.Notifier
	locker   lock.Locker
	log      *slog.Logger

	weights            score.Weights
	historyWindowDays  int
	priceThreshold     float64
	notifyPriceChanges bool

	batchDelay  time.Duration
	concurrency int
	batchBudget time.Duration
	lockTTL     time.Duration

	priorityLimit  int
	routineLimit   int
	staleAfter     time.Duration
	priorityWindow time.Duration

	nowFunc func() time.Time
	tracer  trace.Tracer
	checks  metric.Int64Counter
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c Checker,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:             s,
		checker:           c,
		notifier:          n,
		locker:            lock.NewMemoryLocker(),
		log:               slog.Default(),
		weights:           score.DefaultWeights(),
		historyWindowDays: defaultHistoryWindowDays,
		priceThreshold:    domain.DefaultPriceChangeThreshold,
		batchDelay:        defaultBatchDelay,
		concurrency:       1,
		lockTTL:           defaultLockTTL,
		priorityLimit:     defaultPriorityLimit,
		routineLimit:      defaultRoutineLimit,
		staleAfter:        defaultStaleAfter,
		priorityWindow:    defaultPriorityWindow,
		nowFunc:           time.Now,
		tracer:            telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	checks, err := telemetry.Meter().Int64Counter("invt.checks",
		metric.WithDescription("Availability checks by audit status."),
	)
	if err != nil {
		eng.log.Warn("creating otel check counter", "error", err)
	}
	eng.checks = checks

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithLocker sets the per-product lock. Defaults to an in-process locker.
func WithLocker(l lock.Locker) EngineOption {
	return func(e *Engine) {
		e.locker = l
	}
}

// WithLockTTL sets how long a product lease lives in a shared locker.
func WithLockTTL(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.lockTTL = d
	}
}

// WithWeights sets the scoring weights.
func WithWeights(w score.Weights) EngineOption {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithHistoryWindowDays sets how many days of audit log feed the score.
func WithHistoryWindowDays(days int) EngineOption {
	return func(e *Engine) {
		e.historyWindowDays = days
	}
}

// WithPriceChangeThreshold sets the absolute price delta that counts as a change.
func WithPriceChangeThreshold(v float64) EngineOption {
	return func(e *Engine) {
		e.priceThreshold = v
	}
}

// WithPriceChangeNotifications enables notifications for price-only changes.
func WithPriceChangeNotifications(enabled bool) EngineOption {
	return func(e *Engine) {
		e.notifyPriceChanges = enabled
	}
}

// WithBatchDelay sets the pause between products of the same store in a batch.
func WithBatchDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.batchDelay = d
	}
}

// WithConcurrency sets how many stores a batch checks in parallel.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithBatchBudget bounds the wall time of one batch. Zero disables it.
func WithBatchBudget(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.batchBudget = d
	}
}

// WithScheduleLimits sets the priority and routine batch sizes.
func WithScheduleLimits(priority, routine int) EngineOption {
	return func(e *Engine) {
		e.priorityLimit = priority
		e.routineLimit = routine
	}
}

// WithStaleAfter sets the age after which a product is due a routine check.
func WithStaleAfter(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staleAfter = d
	}
}

// WithPriorityWindow sets how far back recommendations count toward priority.
func WithPriorityWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.priorityWindow = d
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// CheckProduct runs a live check of one product and notifies on any stock
// event it caused. A failed check is reported in the result; the error is
// non-nil only when persisting the outcome failed.
func (eng *Engine) CheckProduct(
	ctx context.Context,
	p *domain.Product,
	checkType domain.CheckType,
) (domain.CheckResult, error) {
	res, events, err := eng.checkProduct(ctx, p, checkType)
	eng.dispatch(context.WithoutCancel(ctx), events, p.Name)
	return res, err
}

// checkProduct performs one check under the product lock.
func (eng *Engine) checkProduct(
	ctx context.Context,
	p *domain.Product,
	checkType domain.CheckType,
) (domain.CheckResult, []notify.StockEvent, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.check_product", trace.WithAttributes(
		attribute.Int64("product.id", p.ID),
		attribute.Int64("store.id", p.StoreID),
		attribute.String("check.type", string(checkType)),
	))
	defer span.End()

	release, err := eng.locker.Acquire(ctx, lock.ProductKey(p.ID), eng.lockTTL)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return failedResult(p, eng.nowFunc(), domain.ErrorKindTransport, err.Error()), nil,
			fmt.Errorf("locking product %d: %w", p.ID, err)
	}
	defer release()

	cfg, err := eng.store.GetStoreConfig(ctx, p.StoreID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		span.SetStatus(codes.Error, err.Error())
		return failedResult(p, eng.nowFunc(), domain.ErrorKindConfig, err.Error()), nil,
			fmt.Errorf("loading store config for product %d: %w", p.ID, err)
	}
	usable := cfg != nil && cfg.IsActive

	var res domain.CheckResult
	if usable {
		res = eng.checker.Check(ctx, p, cfg)
	} else {
		res = failedResult(p, eng.nowFunc(), domain.ErrorKindConfig,
			fmt.Sprintf("store %d has no active check policy", p.StoreID))
	}
	now := eng.nowFunc()

	// A check that ran is recorded even if the batch budget or the HTTP
	// client ended ctx while it was in flight.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	var (
		errs   []error
		events []notify.StockEvent
	)

	prev, next, err := eng.applyResult(ctx, p, &res, now)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return res, nil, err
	}

	if usable && !res.Throttled {
		ev, err := eng.recordStoreHealth(ctx, cfg, &res, now)
		if err != nil {
			errs = append(errs, err)
		}
		if ev != nil {
			events = append(events, *ev)
		}
	}

	if err := eng.recomputeScore(ctx, next, now); err != nil {
		errs = append(errs, err)
	}

	status := auditStatus(&res)
	if err := eng.writeCheckLog(ctx, p, checkType, status, &res, prev, next, now); err != nil {
		errs = append(errs, err)
	}

	events = append(events, eng.stockEvents(p, cfg, &res, prev, next)...)
	eng.observe(ctx, p, checkType, status, &res)

	span.SetAttributes(
		attribute.Bool("check.success", res.Success),
		attribute.Bool("check.available", res.IsAvailable),
		attribute.String("check.status", string(status)),
	)
	if !res.Success {
		span.SetStatus(codes.Error, res.ErrorMessage)
	}

	return res, events, errors.Join(errs...)
}

// applyResult moves the product's inventory status through the transition the
// result calls for, inside the store's row lock. Throttled checks never
// reached the store and leave the status untouched.
func (eng *Engine) applyResult(
	ctx context.Context,
	p *domain.Product,
	res *domain.CheckResult,
	now time.Time,
) (prev, next *domain.InventoryStatus, err error) {
	if res.Throttled {
		cur, err := eng.store.GetInventoryStatus(ctx, p.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			cur = domain.NewInventoryStatus(p.ID)
		case err != nil:
			return nil, nil, fmt.Errorf("reading inventory status for product %d: %w", p.ID, err)
		}
		return cur, cur, nil
	}

	prev, next, err = eng.store.UpdateInventoryStatus(ctx, p.ID, func(s *domain.InventoryStatus) error {
		transition(s, res, now, eng.priceThreshold)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("updating inventory status for product %d: %w", p.ID, err)
	}
	return prev, next, nil
}

// transition applies a check result to an inventory status and copies the
// resolved stock status and price change back onto the result.
func transition(s *domain.InventoryStatus, res *domain.CheckResult, now time.Time, threshold float64) {
	switch {
	case res.Success && res.IsAvailable:
		s.MarkAvailable(now, res.StockQuantity, res.SizeStock)
	case res.Success:
		reason := res.ErrorMessage
		if reason == "" {
			reason = "store reports the product unavailable"
		}
		s.MarkUnavailable(now, reason, res.StockStatus)
	default:
		s.MarkCheckFailed(now, res.ErrorMessage)
	}

	if res.CurrentPrice != nil {
		res.PriceChanged = s.ApplyPrice(*res.CurrentPrice, threshold)
	}
	if res.Success {
		res.StockStatus = s.StockStatus
		res.IsAvailable = s.IsPurchasable
	}
}

// recordStoreHealth feeds the result into the store's failure breaker and
// returns a store_deactivated event when this failure tripped it.
func (eng *Engine) recordStoreHealth(
	ctx context.Context,
	cfg *domain.StoreAPIConfig,
	res *domain.CheckResult,
	now time.Time,
) (*notify.StockEvent, error) {
	tripped := false
	updated, err := eng.store.UpdateStoreHealth(ctx, cfg.StoreID, func(c *domain.StoreAPIConfig) error {
		if res.Success {
			c.MarkSuccess(now)
			return nil
		}
		tripped = c.MarkFailure()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating store %d health: %w", cfg.StoreID, err)
	}

	label := strconv.FormatInt(cfg.StoreID, 10)
	metrics.StoreConsecutiveFailures.WithLabelValues(label).Set(float64(updated.ConsecutiveFailures))

	if !tripped {
		return nil, nil
	}

	metrics.StoreDeactivationsTotal.Inc()
	metrics.ActiveStores.Dec()
	eng.log.Warn("store checks disabled after repeated failures",
		"store_id", cfg.StoreID,
		"store", cfg.StoreName,
		"consecutive_failures", updated.ConsecutiveFailures,
		"last_error", res.ErrorMessage,
	)

	return &notify.StockEvent{
		Kind:      notify.EventStoreDeactivated,
		StoreName: cfg.StoreName,
		Reason: fmt.Sprintf("%d consecutive failures, last: %s",
			updated.ConsecutiveFailures, res.ErrorMessage),
	}, nil
}

func (eng *Engine) writeCheckLog(
	ctx context.Context,
	p *domain.Product,
	checkType domain.CheckType,
	status domain.CheckStatus,
	res *domain.CheckResult,
	prev, next *domain.InventoryStatus,
	now time.Time,
) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding check result: %w", err)
	}

	rt := res.ResponseTimeMs
	entry := &domain.InventoryCheckLog{
		ProductID:           p.ID,
		StoreID:             p.StoreID,
		CheckType:           checkType,
		Status:              status,
		PreviousStockStatus: prev.StockStatus,
		NewStockStatus:      next.StockStatus,
		ResponseTimeMs:      &rt,
		APIResponseData:     raw,
		ErrorMessage:        res.ErrorMessage,
		ErrorKind:           res.ErrorKind,
		PriceBefore:         prev.CurrentPrice,
		PriceAfter:          res.CurrentPrice,
		AvailabilityChanged: prev.LastCheckedAt != nil && prev.StockStatus != next.StockStatus,
		CheckedAt:           now,
	}

	if err := eng.store.InsertCheckLog(ctx, entry); err != nil {
		return fmt.Errorf("writing check log for product %d: %w", p.ID, err)
	}
	return nil
}

// auditStatus classifies a result for the audit log.
func auditStatus(res *domain.CheckResult) domain.CheckStatus {
	switch {
	case res.Success && res.Partial:
		return domain.CheckStatusPartial
	case res.Success:
		return domain.CheckStatusSuccess
	case res.TimedOut:
		return domain.CheckStatusTimeout
	default:
		return domain.CheckStatusFailed
	}
}

func (eng *Engine) observe(
	ctx context.Context,
	p *domain.Product,
	checkType domain.CheckType,
	status domain.CheckStatus,
	res *domain.CheckResult,
) {
	label := strconv.FormatInt(p.StoreID, 10)
	metrics.ChecksTotal.WithLabelValues(label, string(checkType), string(status)).Inc()
	if !res.Success {
		metrics.CheckErrorsTotal.WithLabelValues(string(res.ErrorKind)).Inc()
	}
	if res.Throttled {
		metrics.StoreThrottledTotal.WithLabelValues(label).Inc()
	}
	if res.PriceChanged {
		metrics.PriceChangesTotal.Inc()
	}
	if eng.checks != nil {
		eng.checks.Add(ctx, 1, metric.WithAttributes(
			attribute.String("status", string(status)),
			attribute.String("type", string(checkType)),
		))
	}

	eng.log.Debug("product checked",
		"product_id", p.ID,
		"store_id", p.StoreID,
		"status", status,
		"available", res.IsAvailable,
		"stock_status", res.StockStatus,
		"response_time_ms", res.ResponseTimeMs,
	)
}

// SyncStoreMetrics publishes the number of stores with checks enabled.
func (eng *Engine) SyncStoreMetrics(ctx context.Context) error {
	cfgs, err := eng.store.ListStoreConfigs(ctx)
	if err != nil {
		return fmt.Errorf("listing store configs: %w", err)
	}

	active := 0
	for i := range cfgs {
		label := strconv.FormatInt(cfgs[i].StoreID, 10)
		metrics.StoreConsecutiveFailures.WithLabelValues(label).Set(float64(cfgs[i].ConsecutiveFailures))
		if cfgs[i].IsActive {
			active++
		}
	}
	metrics.ActiveStores.Set(float64(active))
	return nil
}

// failedResult builds a result for a check that never reached the store.
func failedResult(p *domain.Product, now time.Time, kind domain.ErrorKind, msg string) domain.CheckResult {
	res := domain.CheckResult{
		ProductID:   p.ID,
		ProductUUID: p.UUID,
		StockStatus: domain.StockUnknown,
		LastChecked: now,
	}
	res.Fail(kind, msg)
	return res
}
