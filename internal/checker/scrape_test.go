package checker_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/inventory-tracker/internal/checker"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const soldOutPage = `<html><body>
<h1>Oversized Wool Coat</h1>
<span class="price">₩420,000</span>
<div class="notice">This item is SOLD OUT</div>
<button class="buy">Add to cart</button>
</body></html>`

const selectorPage = `<html><body>
<span class="price">₩129,000.50</span>
<p class="stock">Only 7 left</p>
<button class="buy">Add to cart</button>
</body></html>`

const disabledButtonPage = `<html><body>
<span class="price">59,000</span>
<button class="buy" disabled>Add to cart</button>
</body></html>`

const disabledClassPage = `<html><body>
<a class="buy disabled" href="#">Add to cart</a>
</body></html>`

const plainPage = `<html><body><h1>Linen Shirt</h1><p>Natural linen.</p></body></html>`

func scrapeConfig() *domain.StoreAPIConfig {
	return &domain.StoreAPIConfig{
		StoreID:             9,
		StoreName:           "Atelier",
		APIType:             domain.APITypeScraping,
		TimeoutSeconds:      5,
		UnavailableKeywords: []string{"sold out", "품절"},
		IsActive:            true,
	}
}

func pageServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_Scrape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		page        string
		configure   func(*domain.StoreAPIConfig)
		opts        []checker.Option
		wantAvail   bool
		wantStock   domain.StockStatus
		wantQty     *int
		wantPrice   *float64
		wantPartial bool
		wantMessage string
	}{
		{
			name:        "sold out keyword wins",
			page:        soldOutPage,
			wantAvail:   false,
			wantStock:   domain.StockOutOfStock,
			wantMessage: "unavailable keyword found: sold out",
		},
		{
			name: "keyword wins over selectors",
			page: soldOutPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.AvailabilitySelector = "button.buy"
				c.PriceSelector = "span.price"
			},
			wantAvail:   false,
			wantStock:   domain.StockOutOfStock,
			wantMessage: "unavailable keyword found: sold out",
		},
		{
			name: "selectors read quantity and price",
			page: selectorPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.InventorySelector = "p.stock"
				c.PriceSelector = "span.price"
			},
			wantAvail: true,
			wantStock: domain.StockLowStock,
			wantQty:   intPtr(7),
			wantPrice: floatPtr(129000.50),
		},
		{
			name: "disabled buy button",
			page: disabledButtonPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.AvailabilitySelector = "button.buy"
				c.PriceSelector = "span.price"
			},
			wantAvail: false,
			wantStock: domain.StockOutOfStock,
			wantPrice: floatPtr(59000),
		},
		{
			name: "disabled class on buy link",
			page: disabledClassPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.AvailabilitySelector = "a.buy"
			},
			wantAvail: false,
			wantStock: domain.StockOutOfStock,
		},
		{
			name: "enabled buy button",
			page: selectorPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.AvailabilitySelector = "button.buy"
			},
			wantAvail: true,
			wantStock: domain.StockInStock,
		},
		{
			name:        "no signal assumes available by default",
			page:        plainPage,
			wantAvail:   true,
			wantStock:   domain.StockInStock,
			wantPartial: true,
		},
		{
			name:        "no signal with pessimistic checker",
			page:        plainPage,
			opts:        []checker.Option{checker.WithOptimisticDefault(false)},
			wantAvail:   false,
			wantStock:   domain.StockOutOfStock,
			wantPartial: true,
		},
		{
			name: "store override beats checker default",
			page: plainPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.OptimisticDefault = boolPtr(false)
			},
			wantAvail:   false,
			wantStock:   domain.StockOutOfStock,
			wantPartial: true,
		},
		{
			name: "missing selector element falls back to default",
			page: plainPage,
			configure: func(c *domain.StoreAPIConfig) {
				c.InventorySelector = "#stock-count"
			},
			wantAvail:   true,
			wantStock:   domain.StockInStock,
			wantPartial: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := pageServer(t, tt.page)
			cfg := scrapeConfig()
			if tt.configure != nil {
				tt.configure(cfg)
			}

			res := newChecker(tt.opts...).Check(context.Background(), testProduct(srv.URL+"/p/coat"), cfg)

			require.True(t, res.Success, res.ErrorMessage)
			assert.Equal(t, tt.wantAvail, res.IsAvailable)
			assert.Equal(t, tt.wantStock, res.StockStatus)
			assert.Equal(t, tt.wantQty, res.StockQuantity)
			assert.Equal(t, tt.wantPrice, res.CurrentPrice)
			assert.Equal(t, tt.wantPartial, res.Partial)
			assert.Equal(t, tt.wantMessage, res.ErrorMessage)
		})
	}
}

func TestCheck_Scrape_NonASCIIKeyword(t *testing.T) {
	t.Parallel()

	srv := pageServer(t, `<html><body><em>품절</em></body></html>`)
	res := newChecker().Check(context.Background(), testProduct(srv.URL), scrapeConfig())

	require.True(t, res.Success)
	assert.False(t, res.IsAvailable)
	assert.Equal(t, "unavailable keyword found: 품절", res.ErrorMessage)
}

func TestCheck_Scrape_SuccessIndicators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		page        string
		indicators  []string
		wantSuccess bool
		wantAvail   bool
	}{
		{
			name:        "indicator present, case-insensitive",
			page:        selectorPage,
			indicators:  []string{"ADD TO CART"},
			wantSuccess: true,
			wantAvail:   true,
		},
		{
			name:       "captcha page is rejected before keywords are read",
			page:       `<html><body><p>Please verify you are human. Sold out?</p></body></html>`,
			indicators: []string{"add to cart"},
		},
		{
			name:        "sold out product page still reports unavailable",
			page:        soldOutPage,
			indicators:  []string{"add to cart"},
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := pageServer(t, tt.page)
			cfg := scrapeConfig()
			cfg.InventorySelector = ".stock"
			cfg.SuccessIndicators = tt.indicators

			res := newChecker().Check(context.Background(), testProduct(srv.URL), cfg)
			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantAvail, res.IsAvailable)
			if !tt.wantSuccess {
				assert.Equal(t, domain.ErrorKindValidation, res.ErrorKind)
				assert.Contains(t, res.ErrorMessage, `success indicator "add to cart" missing from page`)
			}
		})
	}
}

func TestCheck_Scrape_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	res := newChecker().Check(context.Background(), testProduct(srv.URL), scrapeConfig())
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindTransport, res.ErrorKind)
	assert.Contains(t, res.ErrorMessage, "HTTP 403")
}

func TestCheck_Scrape_MissingURL(t *testing.T) {
	t.Parallel()

	res := newChecker().Check(context.Background(), testProduct(""), scrapeConfig())
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindConfig, res.ErrorKind)
}

type fakeRenderer struct {
	html    string
	err     error
	url     string
	headers map[string]string
}

func (f *fakeRenderer) Render(_ context.Context, url string, headers map[string]string) (string, error) {
	f.url = url
	f.headers = headers
	return f.html, f.err
}

func TestCheck_Scrape_RenderJS(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{html: selectorPage}
	cfg := scrapeConfig()
	cfg.RenderJS = true
	cfg.InventorySelector = ".stock"
	cfg.RequestHeaders = map[string]string{"accept-language": "ko-KR"}

	res := newChecker(checker.WithRenderer(r)).
		Check(context.Background(), testProduct("https://atelier.example/p/1"), cfg)

	require.True(t, res.Success, res.ErrorMessage)
	assert.Equal(t, "https://atelier.example/p/1", r.url)
	assert.Equal(t, "ko-KR", r.headers["Accept-Language"])
	assert.Equal(t, checker.DefaultUserAgent, r.headers["User-Agent"])
	require.NotNil(t, res.StockQuantity)
	assert.Equal(t, 7, *res.StockQuantity)
}

func TestCheck_Scrape_RenderJSFailures(t *testing.T) {
	t.Parallel()

	cfg := scrapeConfig()
	cfg.RenderJS = true

	t.Run("no renderer", func(t *testing.T) {
		t.Parallel()
		res := newChecker().Check(context.Background(), testProduct("https://atelier.example/p/1"), cfg)
		assert.False(t, res.Success)
		assert.Equal(t, domain.ErrorKindConfig, res.ErrorKind)
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		r := &fakeRenderer{err: errors.New("target closed")}
		res := newChecker(checker.WithRenderer(r)).
			Check(context.Background(), testProduct("https://atelier.example/p/1"), cfg)
		assert.False(t, res.Success)
		assert.Equal(t, domain.ErrorKindTransport, res.ErrorKind)
		assert.Contains(t, res.ErrorMessage, "target closed")
	})
}
