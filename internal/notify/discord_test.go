package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }

func testEvent(kind EventKind) StockEvent {
	return StockEvent{
		Kind:           kind,
		ProductUUID:    "6f1c1b8e-2d7a-4c55-9a61-0d0f8e3b7a10",
		ProductName:    "Oversized Wool Coat",
		BrandName:      "Lemaire",
		StoreName:      "Seoul Select",
		ProductURL:     "https://shop.example.com/p/coat-01",
		ImageURL:       "https://img.example.com/coat-01.jpg",
		PreviousStatus: domain.StockOutOfStock,
		NewStatus:      domain.StockInStock,
		PriceAfter:     floatPtr(420000),
		Currency:       "KRW",
	}
}

func TestDiscordNotifier_SendEvent(t *testing.T) {
	t.Parallel()

	priceEvent := testEvent(EventPriceChanged)
	priceEvent.PriceBefore = floatPtr(450000)
	priceEvent.ChangePct = floatPtr(-6.67)

	tests := []struct {
		name       string
		event      StockEvent
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
		wantTitle  string
		wantFields map[string]string
	}{
		{
			name:       "back in stock uses green",
			event:      testEvent(EventBackInStock),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
			wantTitle:  "Back in stock: Oversized Wool Coat",
			wantFields: map[string]string{
				"Store":  "Seoul Select",
				"Status": "out_of_stock → in_stock",
				"Price":  "420000.00 KRW",
			},
		},
		{
			name:       "out of stock uses red",
			event:      testEvent(EventOutOfStock),
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
			wantTitle:  "Out of stock: Oversized Wool Coat",
		},
		{
			name:       "price change includes previous price and delta",
			event:      priceEvent,
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
			wantTitle:  "Price changed: Oversized Wool Coat",
			wantFields: map[string]string{
				"Was":    "450000.00 KRW",
				"Change": "-6.67%",
			},
		},
		{
			name:       "discord returns 429 rate limited",
			event:      testEvent(EventBackInStock),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			event:      testEvent(EventBackInStock),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendEvent(context.Background(), &tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Equal(t, tt.wantTitle, embed.Title)
			assert.Equal(t, tt.event.ProductURL, embed.URL)
			require.NotNil(t, embed.Thumbnail)
			assert.Equal(t, tt.event.ImageURL, embed.Thumbnail.URL)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			for k, v := range tt.wantFields {
				assert.Equal(t, v, fieldMap[k], "field %s", k)
			}
		})
	}
}

func TestDiscordNotifier_StoreDeactivated(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendEvent(context.Background(), &StockEvent{
		Kind:      EventStoreDeactivated,
		StoreName: "Seoul Select",
		Reason:    "10 consecutive failures",
	})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "Store checks disabled: Seoul Select", received.Embeds[0].Title)
	assert.Equal(t, "10 consecutive failures", received.Embeds[0].Description)
	assert.Empty(t, received.Embeds[0].Fields)
	assert.Equal(t, colorGrey, received.Embeds[0].Color)
}

func TestDiscordNotifier_SendEvent_NoImage(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ev := testEvent(EventBackInStock)
	ev.ImageURL = ""

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendEvent(context.Background(), &ev))

	require.Len(t, received.Embeds, 1)
	assert.Nil(t, received.Embeds[0].Thumbnail)
}

func TestDiscordNotifier_SendBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantEmbeds int
		wantCall   bool
	}{
		{name: "empty batch sends nothing", count: 0, wantCall: false},
		{name: "small batch", count: 3, wantEmbeds: 3, wantCall: true},
		{name: "overflow adds summary embed", count: 14, wantEmbeds: 11, wantCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				received discordWebhookPayload
				called   bool
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			events := make([]StockEvent, tt.count)
			for i := range events {
				events[i] = testEvent(EventBackInStock)
			}

			d := NewDiscordNotifier(srv.URL)
			require.NoError(t, d.SendBatch(context.Background(), events, "scheduled check"))

			assert.Equal(t, tt.wantCall, called)
			if tt.wantCall {
				assert.Len(t, received.Embeds, tt.wantEmbeds)
			}
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	ev := testEvent(EventBackInStock)
	err := d.SendEvent(context.Background(), &ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	ev := testEvent(EventBackInStock)
	err := d.SendEvent(context.Background(), &ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendEvent_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	d := NewDiscordNotifier(srv.URL)
	ev := testEvent(EventOutOfStock)
	require.NoError(t, d.SendEvent(context.Background(), &ev))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}
