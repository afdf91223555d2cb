package checker

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

var (
	firstInt   = regexp.MustCompile(`\d+`)
	firstPrice = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// extract reads stock signals from a product page in priority order. A page
// missing any configured success indicator is rejected as not being the
// product page. Then a sold-out keyword anywhere in the text wins outright;
// otherwise quantity, price and the buy button are read from the configured
// selectors, and the store's default is assumed when none of them said
// anything about stock.
func (c *Checker) extract(page io.Reader, cfg *domain.StoreAPIConfig) (*Observation, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, parseErr("parsing html: %w", err)
	}

	text := strings.ToLower(doc.Text())
	for _, ind := range cfg.SuccessIndicators {
		if ind != "" && !strings.Contains(text, strings.ToLower(ind)) {
			return nil, validationErr("success indicator %q missing from page", ind)
		}
	}

	for _, kw := range cfg.UnavailableKeywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return &Observation{
				Available: false,
				Stock:     domain.StockOutOfStock,
				Note:      "unavailable keyword found: " + kw,
			}, nil
		}
	}

	obs := &Observation{}
	decided := false

	if sel := cfg.InventorySelector; sel != "" {
		if el := doc.Find(sel).First(); el.Length() > 0 {
			if m := firstInt.FindString(el.Text()); m != "" {
				if q, err := strconv.Atoi(m); err == nil {
					obs.Quantity = &q
					obs.Available = q > 0
					decided = true
				}
			}
		}
	}

	if sel := cfg.PriceSelector; sel != "" {
		if el := doc.Find(sel).First(); el.Length() > 0 {
			raw := strings.ReplaceAll(el.Text(), ",", "")
			if m := firstPrice.FindString(raw); m != "" {
				if price, err := strconv.ParseFloat(m, 64); err == nil {
					obs.Price = &price
				}
			}
		}
	}

	if sel := cfg.AvailabilitySelector; sel != "" {
		if el := doc.Find(sel).First(); el.Length() > 0 {
			_, disabled := el.Attr("disabled")
			obs.Available = !disabled && !el.HasClass("disabled")
			decided = true
		}
	}

	if !decided {
		obs.Available = c.defaultAvailability(cfg)
		obs.Assumed = true
	}

	return obs, nil
}

func (c *Checker) defaultAvailability(cfg *domain.StoreAPIConfig) bool {
	if cfg.OptimisticDefault != nil {
		return *cfg.OptimisticDefault
	}
	return c.optimistic
}
