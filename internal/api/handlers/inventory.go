package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inventory-tracker/internal/store"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const (
	maxProductsPerCheck      = 20
	defaultAlternativesLimit = 5
	maxAlternativesLimit     = 20
	defaultLogLimit          = 50
)

// InventoryEngine is the part of the engine the inventory endpoints drive.
type InventoryEngine interface {
	CheckProduct(ctx context.Context, p *domain.Product, checkType domain.CheckType) (domain.CheckResult, error)
	RunBatch(ctx context.Context, products []domain.Product, checkType domain.CheckType) ([]domain.CheckResult, error)
	CheckStylingProducts(ctx context.Context, ids []int64) (*domain.StylingReport, error)
	FindAlternatives(ctx context.Context, p *domain.Product, limit int) ([]domain.AlternativeProduct, error)
}

// InventoryHandler serves live checks, stored inventory state, scores and
// alternatives.
type InventoryHandler struct {
	engine InventoryEngine
	store  store.Store
	now    func() time.Time
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(eng InventoryEngine, s store.Store) *InventoryHandler {
	return &InventoryHandler{engine: eng, store: s, now: time.Now}
}

// --- Input/Output types ---

// ProductPathInput identifies a product by UUID.
type ProductPathInput struct {
	UUID string `path:"uuid" doc:"Product UUID"`
}

// ProductCheck is one live check result with product context.
type ProductCheck struct {
	ProductUUID    string             `json:"product_uuid"`
	ProductName    string             `json:"product_name"`
	BrandName      string             `json:"brand_name"`
	StoreName      string             `json:"store_name"`
	ProductURL     string             `json:"product_url"`
	Success        bool               `json:"success"`
	IsAvailable    bool               `json:"is_available"`
	StockStatus    domain.StockStatus `json:"stock_status"`
	StockQuantity  *int               `json:"stock_quantity"`
	SizeStock      map[string]int     `json:"size_stock,omitempty"`
	CurrentPrice   *float64           `json:"current_price"`
	PriceChanged   bool               `json:"price_changed"`
	ResponseTimeMs int64              `json:"response_time_ms"`
	LastChecked    time.Time          `json:"last_checked"`
	ErrorMessage   string             `json:"error_message,omitempty"`
	ErrorKind      domain.ErrorKind   `json:"error_kind,omitempty"`
}

// CheckProductOutput is the response for a single live check.
type CheckProductOutput struct {
	Body ProductCheck
}

// ProductUUIDsInput is the request body for multi-product checks.
type ProductUUIDsInput struct {
	Body struct {
		ProductUUIDs []string `json:"product_uuids" minItems:"1" maxItems:"20" doc:"Products to check"`
	}
}

// CheckSummary aggregates a multi-product check.
type CheckSummary struct {
	TotalChecked     int     `json:"total_checked"`
	AvailableCount   int     `json:"available_count"`
	UnavailableCount int     `json:"unavailable_count"`
	AvailabilityRate float64 `json:"availability_rate" doc:"Percent of checked products available, one decimal"`
}

// CheckProductsOutput is the response for a multi-product check.
type CheckProductsOutput struct {
	Body struct {
		Results []ProductCheck `json:"results"`
		Summary CheckSummary   `json:"summary"`
		Errors  []string       `json:"errors,omitempty" doc:"Checks whose outcome could not be saved"`
	}
}

// StylingCheckInput is the request body for a styling set check.
type StylingCheckInput struct {
	Body struct {
		ProductUUIDs []string `json:"product_uuids" minItems:"1" doc:"Products about to be recommended together"`
	}
}

// StylingCheckOutput is the response for a styling set check. Alternatives
// are keyed by the unavailable product's UUID.
type StylingCheckOutput struct {
	Body struct {
		Results          []ProductCheck                         `json:"results"`
		Alternatives     map[string][]domain.AlternativeProduct `json:"alternatives"`
		TotalChecked     int                                    `json:"total_checked"`
		AvailableCount   int                                    `json:"available_count"`
		UnavailableCount int                                    `json:"unavailable_count"`
		Errors           []string                               `json:"errors,omitempty"`
	}
}

// InventoryStatusView is the stored inventory state of a product.
type InventoryStatusView struct {
	ProductUUID                 string                    `json:"product_uuid"`
	ProductName                 string                    `json:"product_name"`
	BrandName                   string                    `json:"brand_name"`
	StoreName                   string                    `json:"store_name"`
	StockStatus                 domain.StockStatus        `json:"stock_status"`
	AvailabilityStatus          domain.AvailabilityStatus `json:"availability_status,omitempty"`
	IsAvailable                 bool                      `json:"is_available"`
	IsPurchasable               bool                      `json:"is_purchasable"`
	StockQuantity               *int                      `json:"stock_quantity"`
	SizeStock                   map[string]int            `json:"size_stock,omitempty"`
	CurrentPrice                *float64                  `json:"current_price"`
	PriceChanged                bool                      `json:"price_changed"`
	LastChecked                 *time.Time                `json:"last_checked"`
	LastAvailable               *time.Time                `json:"last_available"`
	IsRecentlyChecked           bool                      `json:"is_recently_checked"`
	NeedsUrgentCheck            bool                      `json:"needs_urgent_check"`
	NeedsCheck                  bool                      `json:"needs_check"`
	ConsecutiveUnavailableCount int                       `json:"consecutive_unavailable_count"`
}

// GetInventoryStatusOutput is the response for the stored status view.
type GetInventoryStatusOutput struct {
	Body InventoryStatusView
}

// ScoreView is a product's purchaseability score with derived flags.
type ScoreView struct {
	ProductUUID string `json:"product_uuid"`
	domain.PurchaseabilityScore
	IsHighlyPurchasable     bool `json:"is_highly_purchasable"`
	IsRecommendedForStyling bool `json:"is_recommended_for_styling"`
}

// GetScoreOutput is the response for the score view.
type GetScoreOutput struct {
	Body ScoreView
}

// AlternativesInput is the request for alternative suggestions.
type AlternativesInput struct {
	UUID  string `path:"uuid"   doc:"Product UUID"`
	Limit int    `query:"limit" doc:"Maximum suggestions, clamped to 1-20 (default 5)"`
}

// OriginalProduct summarizes the product alternatives were found for.
type OriginalProduct struct {
	UUID         string  `json:"uuid"`
	Name         string  `json:"name"`
	BrandName    string  `json:"brand_name"`
	CurrentPrice float64 `json:"current_price"`
}

// AlternativesOutput is the response for alternative suggestions.
type AlternativesOutput struct {
	Body struct {
		OriginalProduct OriginalProduct             `json:"original_product"`
		Alternatives    []domain.AlternativeProduct `json:"alternatives"`
		TotalFound      int                         `json:"total_found"`
	}
}

// CheckLogsInput is the request for a product's audit log.
type CheckLogsInput struct {
	UUID   string `path:"uuid"    doc:"Product UUID"`
	Status string `query:"status" doc:"Filter by check status"`
	Limit  int    `query:"limit"  doc:"Number of entries (default 50)" minimum:"0" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"             minimum:"0"`
}

// CheckLogsOutput is the response for a product's audit log.
type CheckLogsOutput struct {
	Body struct {
		Logs   []domain.InventoryCheckLog `json:"logs"`
		Total  int                        `json:"total"`
		Limit  int                        `json:"limit"`
		Offset int                        `json:"offset"`
	}
}

// --- Handlers ---

// CheckProduct runs a live availability check of one product. A failed
// check is still a 200 with success false.
func (h *InventoryHandler) CheckProduct(
	ctx context.Context,
	input *ProductPathInput,
) (*CheckProductOutput, error) {
	p, err := h.product(ctx, input.UUID)
	if err != nil {
		return nil, err
	}

	res, err := h.engine.CheckProduct(ctx, p, domain.CheckUserRequest)
	if err != nil {
		return nil, huma.Error500InternalServerError("inventory check failed: " + err.Error())
	}

	return &CheckProductOutput{Body: newProductCheck(p, &res)}, nil
}

// CheckProducts runs live checks of up to 20 products.
func (h *InventoryHandler) CheckProducts(
	ctx context.Context,
	input *ProductUUIDsInput,
) (*CheckProductsOutput, error) {
	if len(input.Body.ProductUUIDs) > maxProductsPerCheck {
		return nil, huma.Error400BadRequest("at most 20 products can be checked at once")
	}

	products, err := h.products(ctx, input.Body.ProductUUIDs)
	if err != nil {
		return nil, err
	}

	results, batchErr := h.engine.RunBatch(ctx, products, domain.CheckUserRequest)

	resp := &CheckProductsOutput{}
	resp.Body.Results = make([]ProductCheck, 0, len(results))
	for i := range results {
		resp.Body.Results = append(resp.Body.Results, newProductCheck(&products[i], &results[i]))
		if results[i].IsAvailable {
			resp.Body.Summary.AvailableCount++
		}
	}
	resp.Body.Summary.TotalChecked = len(results)
	resp.Body.Summary.UnavailableCount = len(results) - resp.Body.Summary.AvailableCount
	resp.Body.Summary.AvailabilityRate = percent(resp.Body.Summary.AvailableCount, len(results))
	resp.Body.Errors = splitErrors(batchErr)

	return resp, nil
}

// CheckStyling checks a styling set and suggests alternatives for every
// product that cannot be bought.
func (h *InventoryHandler) CheckStyling(
	ctx context.Context,
	input *StylingCheckInput,
) (*StylingCheckOutput, error) {
	products, err := h.products(ctx, input.Body.ProductUUIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(products))
	uuids := make(map[int64]string, len(products))
	byID := make(map[int64]*domain.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID
		uuids[products[i].ID] = products[i].UUID
		byID[products[i].ID] = &products[i]
	}

	report, err := h.engine.CheckStylingProducts(ctx, ids)
	if report == nil {
		msg := "styling check failed"
		if err != nil {
			msg += ": " + err.Error()
		}
		return nil, huma.Error500InternalServerError(msg)
	}

	resp := &StylingCheckOutput{}
	resp.Body.Results = make([]ProductCheck, 0, len(report.Results))
	for i := range report.Results {
		p, ok := byID[report.Results[i].ProductID]
		if !ok {
			continue
		}
		resp.Body.Results = append(resp.Body.Results, newProductCheck(p, &report.Results[i]))
	}

	resp.Body.Alternatives = make(map[string][]domain.AlternativeProduct, len(report.Alternatives))
	for id, alts := range report.Alternatives {
		resp.Body.Alternatives[uuids[id]] = alts
	}
	resp.Body.TotalChecked = report.TotalChecked
	resp.Body.AvailableCount = report.AvailableCount
	resp.Body.UnavailableCount = report.UnavailableCount
	resp.Body.Errors = splitErrors(err)

	return resp, nil
}

// GetInventoryStatus returns the stored inventory state without a live check.
func (h *InventoryHandler) GetInventoryStatus(
	ctx context.Context,
	input *ProductPathInput,
) (*GetInventoryStatusOutput, error) {
	p, err := h.product(ctx, input.UUID)
	if err != nil {
		return nil, err
	}

	view := InventoryStatusView{
		ProductUUID: p.UUID,
		ProductName: p.Name,
		BrandName:   p.BrandName,
		StoreName:   p.StoreName,
	}

	s, err := h.store.GetInventoryStatus(ctx, p.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		view.StockStatus = domain.StockUnknown
		view.IsAvailable = p.IsAvailable
		view.NeedsCheck = true
		view.NeedsUrgentCheck = true
		return &GetInventoryStatusOutput{Body: view}, nil
	case err != nil:
		return nil, huma.Error500InternalServerError("fetching inventory status failed: " + err.Error())
	}

	view.StockStatus = s.StockStatus
	view.AvailabilityStatus = s.AvailabilityStatus
	view.IsAvailable = s.IsPurchasable
	view.IsPurchasable = s.IsPurchasable
	view.StockQuantity = s.StockQuantity
	view.SizeStock = s.SizeStock
	view.CurrentPrice = s.CurrentPrice
	view.PriceChanged = s.PriceChanged
	view.LastChecked = s.LastCheckedAt
	view.LastAvailable = s.LastAvailableAt
	view.IsRecentlyChecked = s.IsRecentlyChecked(h.now())
	view.NeedsUrgentCheck = s.NeedsUrgentCheck()
	view.NeedsCheck = s.LastCheckedAt == nil
	view.ConsecutiveUnavailableCount = s.ConsecutiveUnavailableCount

	return &GetInventoryStatusOutput{Body: view}, nil
}

// GetScore returns the stored purchaseability score, or the neutral score
// for a product never scored.
func (h *InventoryHandler) GetScore(
	ctx context.Context,
	input *ProductPathInput,
) (*GetScoreOutput, error) {
	p, err := h.product(ctx, input.UUID)
	if err != nil {
		return nil, err
	}

	sc, err := h.store.GetScore(ctx, p.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sc = domain.NewPurchaseabilityScore(p.ID)
	case err != nil:
		return nil, huma.Error500InternalServerError("fetching score failed: " + err.Error())
	}

	return &GetScoreOutput{Body: ScoreView{
		ProductUUID:             p.UUID,
		PurchaseabilityScore:    *sc,
		IsHighlyPurchasable:     sc.IsHighlyPurchasable(),
		IsRecommendedForStyling: sc.IsRecommendedForStyling(),
	}}, nil
}

// GetAlternatives suggests substitutes for a product.
func (h *InventoryHandler) GetAlternatives(
	ctx context.Context,
	input *AlternativesInput,
) (*AlternativesOutput, error) {
	p, err := h.product(ctx, input.UUID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultAlternativesLimit
	}
	limit = min(max(limit, 1), maxAlternativesLimit)

	alts, err := h.engine.FindAlternatives(ctx, p, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("finding alternatives failed: " + err.Error())
	}
	if alts == nil {
		alts = []domain.AlternativeProduct{}
	}

	resp := &AlternativesOutput{}
	resp.Body.OriginalProduct = OriginalProduct{
		UUID:         p.UUID,
		Name:         p.Name,
		BrandName:    p.BrandName,
		CurrentPrice: p.CurrentPrice(),
	}
	resp.Body.Alternatives = alts
	resp.Body.TotalFound = len(alts)
	return resp, nil
}

// ListCheckLogs returns a product's audit log, newest first.
func (h *InventoryHandler) ListCheckLogs(
	ctx context.Context,
	input *CheckLogsInput,
) (*CheckLogsOutput, error) {
	p, err := h.product(ctx, input.UUID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultLogLimit
	}

	q := &store.CheckLogQuery{
		ProductID: &p.ID,
		Limit:     limit,
		Offset:    input.Offset,
	}
	if input.Status != "" {
		q.Status = &input.Status
	}

	logs, total, err := h.store.ListCheckLogs(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing check logs failed: " + err.Error())
	}
	if logs == nil {
		logs = []domain.InventoryCheckLog{}
	}

	resp := &CheckLogsOutput{}
	resp.Body.Logs = logs
	resp.Body.Total = total
	resp.Body.Limit = limit
	resp.Body.Offset = input.Offset
	return resp, nil
}

// --- helpers ---

func (h *InventoryHandler) product(ctx context.Context, uuid string) (*domain.Product, error) {
	p, err := h.store.GetProductByUUID(ctx, uuid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("product not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}
	return p, nil
}

// products resolves uuids in request order, skipping unknown and repeated
// ones. No known product at all is a 404.
func (h *InventoryHandler) products(ctx context.Context, uuids []string) ([]domain.Product, error) {
	found, err := h.store.ListProductsByUUIDs(ctx, uuids)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching products failed: " + err.Error())
	}

	byUUID := make(map[string]domain.Product, len(found))
	for i := range found {
		byUUID[found[i].UUID] = found[i]
	}

	out := make([]domain.Product, 0, len(found))
	for _, u := range uuids {
		if p, ok := byUUID[u]; ok {
			out = append(out, p)
			delete(byUUID, u)
		}
	}
	if len(out) == 0 {
		return nil, huma.Error404NotFound("no products to check")
	}
	return out, nil
}

func newProductCheck(p *domain.Product, r *domain.CheckResult) ProductCheck {
	return ProductCheck{
		ProductUUID:    p.UUID,
		ProductName:    p.Name,
		BrandName:      p.BrandName,
		StoreName:      p.StoreName,
		ProductURL:     p.ProductURL,
		Success:        r.Success,
		IsAvailable:    r.IsAvailable,
		StockStatus:    r.StockStatus,
		StockQuantity:  r.StockQuantity,
		SizeStock:      r.SizeStock,
		CurrentPrice:   r.CurrentPrice,
		PriceChanged:   r.PriceChanged,
		ResponseTimeMs: r.ResponseTimeMs,
		LastChecked:    r.LastChecked,
		ErrorMessage:   r.ErrorMessage,
		ErrorKind:      r.ErrorKind,
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

func splitErrors(err error) []string {
	if err == nil {
		return nil
	}
	return strings.Split(err.Error(), "\n")
}

// RegisterInventoryRoutes registers inventory endpoints with the Huma API.
func RegisterInventoryRoutes(api huma.API, h *InventoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "check-product-inventory",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/{uuid}/inventory/check",
		Summary:     "Check a product's availability",
		Description: "Runs a live check against the product's store and returns the result. " +
			"A check that could not reach or parse the store returns success false.",
		Tags:   []string{"inventory"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CheckProduct)

	huma.Register(api, huma.Operation{
		OperationID: "check-products-inventory",
		Method:      http.MethodPost,
		Path:        "/api/v1/inventory/check",
		Summary:     "Check several products",
		Description: "Runs live checks of up to 20 products and summarizes availability.",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.CheckProducts)

	huma.Register(api, huma.Operation{
		OperationID: "check-styling-inventory",
		Method:      http.MethodPost,
		Path:        "/api/v1/inventory/styling-check",
		Summary:     "Check a styling set",
		Description: "Checks products about to be recommended together and suggests " +
			"alternatives for each one that cannot be bought.",
		Tags:   []string{"inventory"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CheckStyling)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-inventory",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{uuid}/inventory",
		Summary:     "Get stored inventory status",
		Description: "Returns the last known inventory state without contacting the store.",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetInventoryStatus)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-purchaseability",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{uuid}/purchaseability",
		Summary:     "Get purchaseability score",
		Description: "Returns the stored score; products never scored get the neutral score of 50.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetScore)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-alternatives",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{uuid}/alternatives",
		Summary:     "Suggest alternative products",
		Description: "Returns available products from the same category priced within 30%, best scored first.",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetAlternatives)

	huma.Register(api, huma.Operation{
		OperationID: "list-product-check-logs",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{uuid}/inventory/logs",
		Summary:     "List a product's check log",
		Description: "Returns the product's inventory check audit entries, newest first.",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.ListCheckLogs)
}
