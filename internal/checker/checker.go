// Package checker queries a store, by REST API or by reading its product
// page, and reports what it found as a domain.CheckResult.
package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const (
	// DefaultUserAgent is sent when the store config does not set one.
	DefaultUserAgent = "Mozilla/5.0 (compatible; inventory-tracker/1.0; +https://github.com/donaldgifford/inventory-tracker)"

	defaultMaxBodyBytes = 5 << 20
)

// Checker performs availability checks. It is safe for concurrent use.
type Checker struct {
	client     *http.Client
	userAgent  string
	optimistic bool
	maxBody    int64
	timeout    time.Duration
	parsers    map[string]Parser
	throttle   *Throttle
	renderer   Renderer
	log        *slog.Logger
	nowFunc    func() time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets the HTTP client used for store requests.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) { ch.client = c }
}

// WithUserAgent sets the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(ch *Checker) {
		if ua != "" {
			ch.userAgent = ua
		}
	}
}

// WithOptimisticDefault sets the availability assumed when a page loads but
// carries no stock signal and the store config has no override.
func WithOptimisticDefault(v bool) Option {
	return func(ch *Checker) { ch.optimistic = v }
}

// WithMaxBodyBytes caps how much of a response is read.
func WithMaxBodyBytes(n int64) Option {
	return func(ch *Checker) {
		if n > 0 {
			ch.maxBody = n
		}
	}
}

// WithDefaultTimeout sets the request timeout for stores whose config does
// not set timeout_seconds.
func WithDefaultTimeout(d time.Duration) Option {
	return func(ch *Checker) {
		if d > 0 {
			ch.timeout = d
		}
	}
}

// WithParser registers (or replaces) a REST response parser under key.
func WithParser(key string, p Parser) Option {
	return func(ch *Checker) { ch.parsers[key] = p }
}

// WithThrottle shares a per-store throttle between checkers.
func WithThrottle(t *Throttle) Option {
	return func(ch *Checker) { ch.throttle = t }
}

// WithRenderer enables checks for stores that need JavaScript rendering.
func WithRenderer(r Renderer) Option {
	return func(ch *Checker) { ch.renderer = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(ch *Checker) { ch.log = l }
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(ch *Checker) { ch.nowFunc = f }
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{},
		userAgent:  DefaultUserAgent,
		optimistic: true,
		maxBody:    defaultMaxBodyBytes,
		parsers:    defaultParsers(),
		log:        slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.throttle == nil {
		c.throttle = NewThrottle(WithThrottleNowFunc(c.nowFunc))
	}
	return c
}

// Check queries the product's store. Failures are reported in the result,
// never as a Go error or a panic.
func (c *Checker) Check(
	ctx context.Context,
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
) (res domain.CheckResult) {
	start := time.Now()
	res = domain.CheckResult{
		ProductID:   p.ID,
		ProductUUID: p.UUID,
		StockStatus: domain.StockUnknown,
		LastChecked: c.nowFunc(),
	}

	apiType := "none"
	if cfg != nil {
		apiType = string(cfg.APIType)
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("check panicked", "product_id", p.ID, "panic", r)
			res.Fail(domain.ErrorKindParse, fmt.Sprintf("check panicked: %v", r))
		}
		elapsed := time.Since(start)
		res.ResponseTimeMs = elapsed.Milliseconds()
		metrics.CheckDuration.WithLabelValues(apiType).Observe(elapsed.Seconds())
	}()

	if cfg == nil || !cfg.IsActive {
		res.Fail(domain.ErrorKindConfig, "store check policy is missing or inactive")
		return res
	}

	var check func(context.Context, *domain.Product, *domain.StoreAPIConfig) (*Observation, error)
	switch cfg.APIType {
	case domain.APITypeREST:
		check = c.checkREST
	case domain.APITypeScraping:
		check = c.checkScrape
	default:
		res.Fail(domain.ErrorKindConfig, fmt.Sprintf("api type %q is not supported", cfg.APIType))
		return res
	}

	if err := c.throttle.Wait(ctx, cfg); err != nil {
		res.Fail(domain.ErrorKindTransport, err.Error())
		res.TimedOut = isTimeout(err)
		res.Throttled = errors.Is(err, ErrDailyLimitReached)
		return res
	}

	obs, err := check(ctx, p, cfg)
	if err != nil {
		res.Fail(kindOf(err), err.Error())
		res.TimedOut = isTimeout(err)
		c.log.Debug("check failed",
			"product_id", p.ID,
			"store_id", cfg.StoreID,
			"kind", res.ErrorKind,
			"error", err,
		)
		return res
	}

	obs.apply(&res)
	return res
}

func (c *Checker) checkREST(
	ctx context.Context,
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
) (*Observation, error) {
	url := p.ProductURL
	if cfg.InventoryCheckURL != "" {
		url = endpointFor(cfg.InventoryCheckURL, p)
	}
	if url == "" {
		return nil, configErr("no inventory endpoint or product URL")
	}

	parser, ok := c.parsers[cfg.Parser()]
	if !ok {
		return nil, configErr("unknown parser %q", cfg.Parser())
	}

	body, err := c.fetch(ctx, url, cfg)
	if err != nil {
		return nil, err
	}

	obs, err := parser.Parse(body)
	if err != nil {
		return nil, parseErr("parsing response: %w", err)
	}

	for _, ind := range cfg.SuccessIndicators {
		if !bytes.Contains(body, []byte(ind)) {
			return nil, validationErr("success indicator %q missing from response", ind)
		}
	}

	return obs, nil
}

func (c *Checker) checkScrape(
	ctx context.Context,
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
) (*Observation, error) {
	if p.ProductURL == "" {
		return nil, configErr("product has no URL")
	}

	var page io.Reader
	if cfg.RenderJS {
		if c.renderer == nil {
			return nil, configErr("store requires a browser renderer but none is configured")
		}
		rctx, cancel := context.WithTimeout(ctx, c.requestTimeout(cfg))
		defer cancel()

		html, err := c.renderer.Render(rctx, p.ProductURL, c.headers(cfg))
		if err != nil {
			return nil, transportErr("rendering page: %w", err)
		}
		page = strings.NewReader(html)
	} else {
		body, err := c.fetch(ctx, p.ProductURL, cfg)
		if err != nil {
			return nil, err
		}
		page = bytes.NewReader(body)
	}

	return c.extract(page, cfg)
}

// fetch GETs url with the store's headers and timeout and returns the body.
func (c *Checker) fetch(
	ctx context.Context,
	url string,
	cfg *domain.StoreAPIConfig,
) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout(cfg))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, configErr("creating request: %w", err)
	}
	for k, v := range c.headers(cfg) {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, transportErr("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, transportErr("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, transportErr("store returned HTTP %d", resp.StatusCode)
	}

	return body, nil
}

// requestTimeout is the store's own timeout, falling back to the checker
// default when the store sets none.
func (c *Checker) requestTimeout(cfg *domain.StoreAPIConfig) time.Duration {
	if cfg.TimeoutSeconds <= 0 && c.timeout > 0 {
		return c.timeout
	}
	return cfg.Timeout()
}

// headers merges the store's configured headers with the default User-Agent.
func (c *Checker) headers(cfg *domain.StoreAPIConfig) map[string]string {
	h := make(map[string]string, len(cfg.RequestHeaders)+1)
	for k, v := range cfg.RequestHeaders {
		h[http.CanonicalHeaderKey(k)] = v
	}
	if _, ok := h["User-Agent"]; !ok {
		h["User-Agent"] = c.userAgent
	}
	return h
}

// endpointFor fills the {product_id} and {product_uuid} placeholders.
func endpointFor(tmpl string, p *domain.Product) string {
	return strings.NewReplacer(
		"{product_id}", p.ExternalID,
		"{product_uuid}", p.UUID,
	).Replace(tmpl)
}
