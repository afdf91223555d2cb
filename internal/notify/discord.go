package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // back in stock
	colorRed    = 0xE74C3C // out of stock
	colorYellow = 0xF1C40F // price change
	colorGrey   = 0x95A5A6 // store deactivated

	maxEmbeds = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendEvent sends a single event as a Discord embed.
func (d *DiscordNotifier) SendEvent(ctx context.Context, ev *StockEvent) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(ev)},
	}
	return d.post(ctx, payload)
}

// SendBatch sends multiple events as a single Discord message.
func (d *DiscordNotifier) SendBatch(
	ctx context.Context,
	events []StockEvent,
	title string,
) error {
	if len(events) == 0 {
		return nil
	}

	limit := min(len(events), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&events[i]))
	}

	if len(events) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more events in %s", len(events)-maxEmbeds, title),
			Color:       colorGrey,
			Description: "Check the inventory statistics endpoint for the full picture.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(ev *StockEvent) discordEmbed {
	embed := discordEmbed{
		Title: eventTitle(ev),
		URL:   ev.ProductURL,
		Color: eventColor(ev.Kind),
	}

	if ev.Kind == EventStoreDeactivated {
		embed.Description = ev.Reason
		return embed
	}

	embed.Fields = []discordEmbedField{
		{Name: "Store", Value: orDash(ev.StoreName), Inline: true},
		{Name: "Brand", Value: orDash(ev.BrandName), Inline: true},
		{Name: "Status", Value: fmt.Sprintf("%s → %s", ev.PreviousStatus, ev.NewStatus), Inline: true},
	}
	if ev.PriceAfter != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Price", Value: formatPrice(ev.PriceAfter, ev.Currency), Inline: true,
		})
	}
	if ev.Kind == EventPriceChanged && ev.PriceBefore != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Was", Value: formatPrice(ev.PriceBefore, ev.Currency), Inline: true,
		})
		if ev.ChangePct != nil {
			embed.Fields = append(embed.Fields, discordEmbedField{
				Name: "Change", Value: fmt.Sprintf("%+.2f%%", *ev.ChangePct), Inline: true,
			})
		}
	}

	if ev.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: ev.ImageURL}
	}

	return embed
}

func eventTitle(ev *StockEvent) string {
	switch ev.Kind {
	case EventBackInStock:
		return "Back in stock: " + ev.ProductName
	case EventOutOfStock:
		return "Out of stock: " + ev.ProductName
	case EventPriceChanged:
		return "Price changed: " + ev.ProductName
	case EventStoreDeactivated:
		return "Store checks disabled: " + ev.StoreName
	default:
		return ev.ProductName
	}
}

func eventColor(k EventKind) int {
	switch k {
	case EventBackInStock:
		return colorGreen
	case EventOutOfStock:
		return colorRed
	case EventPriceChanged:
		return colorYellow
	default:
		return colorGrey
	}
}

func formatPrice(p *float64, currency string) string {
	s := strconv.FormatFloat(*p, 'f', 2, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
