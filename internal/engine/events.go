package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/notify"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const batchThreshold = 5

// stockEvents derives the notifications a check produced. The first check of
// a product establishes a baseline and never produces a stock event.
func (eng *Engine) stockEvents(
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
	res *domain.CheckResult,
	prev, next *domain.InventoryStatus,
) []notify.StockEvent {
	if !res.Success || prev.LastCheckedAt == nil {
		return nil
	}

	var events []notify.StockEvent

	switch {
	case !prev.IsPurchasable && next.IsPurchasable:
		metrics.AvailabilityTransitionsTotal.WithLabelValues("restocked").Inc()
		events = append(events, eng.newEvent(notify.EventBackInStock, p, cfg, prev, next))
	case prev.IsPurchasable && !next.IsPurchasable:
		metrics.AvailabilityTransitionsTotal.WithLabelValues("sold_out").Inc()
		ev := eng.newEvent(notify.EventOutOfStock, p, cfg, prev, next)
		ev.Reason = next.LastErrorMessage
		events = append(events, ev)
	}

	if res.PriceChanged && eng.notifyPriceChanges {
		events = append(events, eng.newEvent(notify.EventPriceChanged, p, cfg, prev, next))
	}

	return events
}

func (eng *Engine) newEvent(
	kind notify.EventKind,
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
	prev, next *domain.InventoryStatus,
) notify.StockEvent {
	storeName := p.StoreName
	if storeName == "" && cfg != nil {
		storeName = cfg.StoreName
	}
	return notify.StockEvent{
		Kind:           kind,
		ProductUUID:    p.UUID,
		ProductName:    p.Name,
		BrandName:      p.BrandName,
		StoreName:      storeName,
		ProductURL:     p.ProductURL,
		ImageURL:       p.MainImage,
		PreviousStatus: prev.StockStatus,
		NewStatus:      next.StockStatus,
		PriceBefore:    prev.CurrentPrice,
		PriceAfter:     next.CurrentPrice,
		ChangePct:      next.PriceChangePercentage,
		Currency:       p.Currency,
	}
}

// dispatch sends events one by one, or as a single batch once there are
// enough of them. Delivery failures are counted and logged, never returned.
func (eng *Engine) dispatch(ctx context.Context, events []notify.StockEvent, title string) {
	if len(events) == 0 || eng.notifier == nil {
		return
	}

	if err := sendEvents(ctx, eng.notifier, events, title); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("sending stock notifications", "events", len(events), "error", err)
	}
}

func sendEvents(ctx context.Context, n notify.Notifier, events []notify.StockEvent, title string) error {
	if len(events) >= batchThreshold {
		if err := n.SendBatch(ctx, events, title); err != nil {
			return fmt.Errorf("sending batch of %d events: %w", len(events), err)
		}
		for i := range events {
			metrics.NotificationsSentTotal.WithLabelValues(string(events[i].Kind)).Inc()
		}
		return nil
	}

	for i := range events {
		if err := n.SendEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("sending %s event: %w", events[i].Kind, err)
		}
		metrics.NotificationsSentTotal.WithLabelValues(string(events[i].Kind)).Inc()
	}
	return nil
}
