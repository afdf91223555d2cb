package checker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parser turns a store API response body into an Observation.
type Parser interface {
	Parse(body []byte) (*Observation, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(body []byte) (*Observation, error)

// Parse calls f(body).
func (f ParserFunc) Parse(body []byte) (*Observation, error) { return f(body) }

// Built-in parser keys.
const (
	ParserGeneric = "generic"
	ParserShopify = "shopify"
)

func defaultParsers() map[string]Parser {
	return map[string]Parser{
		ParserGeneric: ParserFunc(parseGeneric),
		ParserShopify: ParserFunc(parseShopify),
	}
}

// genericPayload is the flat shape most store APIs return:
// {"stock": 3, "available": true, "price": 59000, "sizes": {"M": 2}}.
type genericPayload struct {
	Stock     *int           `json:"stock"`
	Available *bool          `json:"available"`
	Price     *float64       `json:"price"`
	Sizes     map[string]int `json:"sizes"`
}

func parseGeneric(body []byte) (*Observation, error) {
	var p genericPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decoding generic response: %w", err)
	}

	if p.Stock == nil && p.Available == nil {
		return nil, errors.New("response has neither stock nor available")
	}

	obs := &Observation{Price: p.Price, Sizes: p.Sizes}
	if p.Stock != nil {
		q := max(*p.Stock, 0)
		obs.Quantity = &q
		obs.Available = q > 0
	}
	if p.Available != nil {
		obs.Available = *p.Available
	}
	return obs, nil
}

// shopifyPayload is the subset of a Shopify products/<handle>.json response
// that carries stock.
type shopifyPayload struct {
	Product struct {
		Variants []struct {
			Title             string `json:"title"`
			Price             string `json:"price"`
			Available         *bool  `json:"available"`
			InventoryQuantity *int   `json:"inventory_quantity"`
		} `json:"variants"`
	} `json:"product"`
}

func parseShopify(body []byte) (*Observation, error) {
	var p shopifyPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decoding shopify response: %w", err)
	}

	variants := p.Product.Variants
	if len(variants) == 0 {
		return nil, errors.New("shopify response has no variants")
	}

	obs := &Observation{Sizes: make(map[string]int, len(variants))}
	var (
		total        int
		haveQty      bool
		anyFlag      bool
		anyAvailable bool
	)
	for _, v := range variants {
		if v.InventoryQuantity != nil {
			q := max(*v.InventoryQuantity, 0)
			total += q
			haveQty = true
			obs.Sizes[v.Title] = q
		}
		if v.Available != nil {
			anyFlag = true
			anyAvailable = anyAvailable || *v.Available
		}
	}

	if haveQty {
		obs.Quantity = &total
		obs.Available = total > 0
	}
	if anyFlag {
		obs.Available = anyAvailable
	}
	if !haveQty && !anyFlag {
		return nil, errors.New("shopify variants carry no stock fields")
	}

	if s := strings.TrimSpace(variants[0].Price); s != "" {
		price, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing shopify price %q: %w", s, err)
		}
		obs.Price = &price
	}

	return obs, nil
}
