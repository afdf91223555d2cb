// Package main implements a mock partner store for local development.
// It serves one catalog fixture three ways: a generic stock API, a
// Shopify-style products/<id>.json endpoint, and HTML product pages for
// scraping. Products can be marked slow or failing to exercise timeouts and
// the store circuit breaker.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

type catalog struct {
	Products []product `json:"products"`
}

type product struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	Sizes        map[string]int `json:"sizes"`
	Discontinued bool           `json:"discontinued"`
	// Behavior is "", "slow" or "error".
	Behavior string `json:"behavior"`
}

func (p *product) stock() int {
	total := 0
	for _, q := range p.Sizes {
		total += q
	}
	return total
}

// sizeNames returns size keys in a stable order.
func (p *product) sizeNames() []string {
	names := make([]string, 0, len(p.Sizes))
	for k := range p.Sizes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type server struct {
	logger   *slog.Logger
	products map[string]*product
	delay    time.Duration
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	delay := flag.Duration("slow-delay", 5*time.Second, "response delay for products marked slow")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(cat.Products))

	s := newServer(logger, cat, *delay)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock store", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: *delay + 10*time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &c, nil
}

func newServer(logger *slog.Logger, c *catalog, delay time.Duration) *server {
	s := &server{
		logger:   logger,
		products: make(map[string]*product, len(c.Products)),
		delay:    delay,
	}
	for i := range c.Products {
		s.products[c.Products[i].ID] = &c.Products[i]
	}
	return s
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stock/{id}", s.stockHandler)
	mux.HandleFunc("GET /products/{id}", s.pageHandler)
	mux.HandleFunc("GET /shop/products/{id}", s.shopifyHandler)
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// lookup resolves the product for a request and applies its configured
// behavior. It reports false when the response has already been written.
func (s *server) lookup(w http.ResponseWriter, r *http.Request, id string) (*product, bool) {
	p, ok := s.products[id]
	if !ok || p.Discontinued {
		http.NotFound(w, r)
		return nil, false
	}

	switch p.Behavior {
	case "error":
		s.logger.Warn("simulated failure", "product", id)
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
		return nil, false
	case "slow":
		select {
		case <-time.After(s.delay):
		case <-r.Context().Done():
			return nil, false
		}
	}
	return p, true
}

func (s *server) stockHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	stock := p.stock()
	writeJSON(w, map[string]any{
		"stock":     stock,
		"available": stock > 0,
		"price":     p.Price,
		"sizes":     p.Sizes,
	})
	s.logger.Info("stock", "product", p.ID, "stock", stock)
}

func (s *server) shopifyHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r, strings.TrimSuffix(r.PathValue("id"), ".json"))
	if !ok {
		return
	}

	type variant struct {
		Title             string `json:"title"`
		Price             string `json:"price"`
		Available         bool   `json:"available"`
		InventoryQuantity int    `json:"inventory_quantity"`
	}
	variants := make([]variant, 0, len(p.Sizes))
	for _, size := range p.sizeNames() {
		q := p.Sizes[size]
		variants = append(variants, variant{
			Title:             size,
			Price:             strconv.FormatFloat(p.Price, 'f', 2, 64),
			Available:         q > 0,
			InventoryQuantity: q,
		})
	}

	writeJSON(w, map[string]any{
		"product": map[string]any{
			"title":    p.Name,
			"variants": variants,
		},
	})
}

// productPage renders the scrapeable product page. Sold-out pages drop the
// add-to-cart button and carry the "Sold out" keyword.
func productPage(p *product) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		name := templ.EscapeString(p.Name)
		stock := p.stock()

		var b strings.Builder
		b.WriteString("<!doctype html>\n<html>\n")
		fmt.Fprintf(&b, "<head><title>%s</title></head>\n<body>\n", name)
		fmt.Fprintf(&b, "<h1 class=\"product-title\">%s</h1>\n", name)
		fmt.Fprintf(&b, "<span class=\"price\">$%.2f</span>\n", p.Price)
		if stock > 0 {
			fmt.Fprintf(&b, "<div class=\"stock\" data-qty=\"%d\">%d in stock</div>\n", stock, stock)
			b.WriteString("<button class=\"add-to-cart\">Add to cart</button>\n")
		} else {
			b.WriteString("<div class=\"stock\">Sold out</div>\n")
		}
		b.WriteString("</body>\n</html>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (s *server) pageHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r, r.PathValue("id"))
	if !ok {
		return
	}
	templ.Handler(productPage(p)).ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
