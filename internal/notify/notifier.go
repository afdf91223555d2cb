// Package notify defines the notification interface and implementations
// for stock event delivery.
package notify

import (
	"context"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// EventKind classifies a stock event.
type EventKind string

// Event kinds.
const (
	EventBackInStock      EventKind = "back_in_stock"
	EventOutOfStock       EventKind = "out_of_stock"
	EventPriceChanged     EventKind = "price_changed"
	EventStoreDeactivated EventKind = "store_deactivated"
)

// StockEvent contains the data needed to send a stock event notification.
type StockEvent struct {
	Kind           EventKind
	ProductUUID    string
	ProductName    string
	BrandName      string
	StoreName      string
	ProductURL     string
	ImageURL       string
	PreviousStatus domain.StockStatus
	NewStatus      domain.StockStatus
	PriceBefore    *float64
	PriceAfter     *float64
	ChangePct      *float64
	Currency       string
	Reason         string
}

// Notifier defines the interface for sending stock event notifications.
type Notifier interface {
	SendEvent(ctx context.Context, ev *StockEvent) error
	SendBatch(ctx context.Context, events []StockEvent, title string) error
}
