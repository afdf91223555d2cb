package checker

import (
	"context"
	"errors"
	"fmt"
	"net"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// Observation is what a parser or the page extractor read from one store
// response.
type Observation struct {
	Available bool
	// Stock overrides the status derived from Quantity and Available.
	Stock    domain.StockStatus
	Quantity *int
	Price    *float64
	Sizes    map[string]int
	// Note is surfaced as the result message, e.g. the matched sold-out keyword.
	Note string
	// Assumed is set when no signal was found and the store's default was used.
	Assumed bool
}

func (o *Observation) apply(r *domain.CheckResult) {
	r.Success = true
	r.IsAvailable = o.Available
	r.StockQuantity = o.Quantity
	r.SizeStock = o.Sizes
	r.CurrentPrice = o.Price
	r.Partial = o.Assumed
	r.ErrorMessage = o.Note

	switch {
	case o.Stock != "":
		r.StockStatus = o.Stock
	case o.Quantity != nil:
		r.StockStatus = domain.StockStatusForQuantity(*o.Quantity)
	case o.Available:
		r.StockStatus = domain.StockInStock
	default:
		r.StockStatus = domain.StockOutOfStock
	}
}

// checkError carries the failure classification across the checker's
// internal call chain.
type checkError struct {
	kind domain.ErrorKind
	err  error
}

func (e *checkError) Error() string { return e.err.Error() }
func (e *checkError) Unwrap() error { return e.err }

func newCheckError(kind domain.ErrorKind, format string, args ...any) error {
	return &checkError{kind: kind, err: fmt.Errorf(format, args...)}
}

func configErr(format string, args ...any) error {
	return newCheckError(domain.ErrorKindConfig, format, args...)
}

func transportErr(format string, args ...any) error {
	return newCheckError(domain.ErrorKindTransport, format, args...)
}

func parseErr(format string, args ...any) error {
	return newCheckError(domain.ErrorKindParse, format, args...)
}

func validationErr(format string, args ...any) error {
	return newCheckError(domain.ErrorKindValidation, format, args...)
}

func kindOf(err error) domain.ErrorKind {
	var ce *checkError
	if errors.As(err, &ce) {
		return ce.kind
	}
	return domain.ErrorKindTransport
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
