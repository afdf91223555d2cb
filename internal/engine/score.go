package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	score "github.com/donaldgifford/inventory-tracker/pkg/scorer"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ScoreProduct recomputes and persists a product's purchaseability score from
// its current inventory status and the audit log of the last windowDays.
// A nil status is a no-op: products never checked keep their stored score.
func ScoreProduct(
	ctx context.Context,
	s store.Store,
	status *domain.InventoryStatus,
	w score.Weights,
	windowDays int,
	now time.Time,
) (*domain.PurchaseabilityScore, error) {
	if status == nil {
		return nil, nil
	}

	hist, err := s.GetCheckHistory(ctx, status.ProductID, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, fmt.Errorf("getting check history for product %d: %w", status.ProductID, err)
	}
	if hist != nil && hist.WindowDays == 0 {
		hist.WindowDays = windowDays
	}

	prev, err := s.GetScore(ctx, status.ProductID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting score for product %d: %w", status.ProductID, err)
	}

	sc := score.Compute(score.Input{
		Status:   *status,
		History:  hist,
		Previous: prev,
		Now:      now,
	}, w)

	metrics.ScoreDistribution.Observe(float64(sc.OverallScore))

	if err := s.UpsertScore(ctx, &sc); err != nil {
		return nil, fmt.Errorf("saving score for product %d: %w", status.ProductID, err)
	}
	return &sc, nil
}

func (eng *Engine) recomputeScore(ctx context.Context, status *domain.InventoryStatus, now time.Time) error {
	_, err := ScoreProduct(ctx, eng.store, status, eng.weights, eng.historyWindowDays, now)
	return err
}

// RescoreProducts recomputes scores for the given products from their stored
// status without running a check. Products with no status are skipped.
func (eng *Engine) RescoreProducts(ctx context.Context, productIDs []int64) (int, error) {
	var errs []error
	scored := 0
	now := eng.nowFunc()

	for _, id := range productIDs {
		status, err := eng.store.GetInventoryStatus(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("reading status for product %d: %w", id, err))
			continue
		}
		if err := eng.recomputeScore(ctx, status, now); err != nil {
			errs = append(errs, err)
			continue
		}
		scored++
	}

	return scored, errors.Join(errs...)
}
