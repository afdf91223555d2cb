package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const alternativePriceBand = 0.3

// FindAlternatives suggests available products from the same category priced
// within 30% of p's original price, best scored first. A product without a
// category has no alternatives.
func (eng *Engine) FindAlternatives(
	ctx context.Context,
	p *domain.Product,
	limit int,
) ([]domain.AlternativeProduct, error) {
	if limit <= 0 {
		limit = defaultAlternativesLimit
	}
	if p.CategoryID == nil {
		return []domain.AlternativeProduct{}, nil
	}

	alts, err := eng.store.FindAlternatives(ctx, &store.AlternativeQuery{
		ProductID:  p.ID,
		CategoryID: p.CategoryID,
		MinPrice:   p.OriginalPrice * (1 - alternativePriceBand),
		MaxPrice:   p.OriginalPrice * (1 + alternativePriceBand),
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("finding alternatives for product %d: %w", p.ID, err)
	}
	if alts == nil {
		alts = []domain.AlternativeProduct{}
	}
	if len(alts) > limit {
		alts = alts[:limit]
	}

	metrics.AlternativesServedTotal.Add(float64(len(alts)))
	return alts, nil
}
