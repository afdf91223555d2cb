package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer returns the HTML of a page after its scripts have run.
type Renderer interface {
	Render(ctx context.Context, url string, headers map[string]string) (string, error)
}

// RodRenderer renders pages in a headless Chrome driven by go-rod. One
// browser is shared; each Render opens and closes its own tab.
type RodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// BrowserOptions configures a RodRenderer.
type BrowserOptions struct {
	// ControlURL connects to an already running browser (e.g. a sidecar).
	// When empty a local headless browser is launched.
	ControlURL string
	// Bin is the browser binary used when launching locally.
	Bin     string
	Timeout time.Duration
}

// NewRodRenderer connects to or launches a headless browser.
func NewRodRenderer(opts BrowserOptions) (*RodRenderer, error) {
	u := opts.ControlURL
	if u == "" {
		l := launcher.New().Headless(true)
		if opts.Bin != "" {
			l = l.Bin(opts.Bin)
		}
		var err error
		if u, err = l.Launch(); err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &RodRenderer{browser: browser, timeout: timeout}, nil
}

// Render loads url in a fresh tab and returns the rendered document.
func (r *RodRenderer) Render(ctx context.Context, url string, headers map[string]string) (string, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening tab: %w", err)
	}
	defer func() { _ = page.Close() }()

	p := page.Timeout(r.timeout)

	if len(headers) > 0 {
		kv := make([]string, 0, len(headers)*2)
		for k, v := range headers {
			kv = append(kv, k, v)
		}
		cleanup, err := p.SetExtraHeaders(kv)
		if err != nil {
			return "", fmt.Errorf("setting headers: %w", err)
		}
		defer cleanup()
	}

	if err := p.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for %s: %w", url, err)
	}

	html, err := p.HTML()
	if err != nil {
		return "", fmt.Errorf("reading rendered html: %w", err)
	}
	return html, nil
}

// Close shuts the browser down.
func (r *RodRenderer) Close() error {
	return r.browser.Close()
}
