package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize caps the number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetProduct retrieves a product by its internal ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProductByID, id), p); err != nil {
		return nil, notFound(err, "product")
	}
	return p, nil
}

// GetProductByUUID retrieves a product by its public UUID.
func (s *PostgresStore) GetProductByUUID(ctx context.Context, uuid string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProductByUUID, uuid), p); err != nil {
		return nil, notFound(err, "product")
	}
	return p, nil
}

// ListProductsByIDs returns the products with the given IDs in no particular order.
func (s *PostgresStore) ListProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.queryProducts(ctx, queryListProductsByIDs, ids)
}

// ListProductsByUUIDs returns the products with the given UUIDs in no particular order.
func (s *PostgresStore) ListProductsByUUIDs(
	ctx context.Context,
	uuids []string,
) ([]domain.Product, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	return s.queryProducts(ctx, queryListProductsByUUIDs, uuids)
}

// ListProductsNeedingCheck returns active products at active stores whose
// status is missing or older than staleBefore, oldest first.
func (s *PostgresStore) ListProductsNeedingCheck(
	ctx context.Context,
	staleBefore time.Time,
	limit int,
) ([]domain.Product, error) {
	return s.queryProducts(ctx, queryListProductsNeedingCheck, staleBefore, limit)
}

// ListPriorityCandidates returns active products that are wishlisted or were
// recommended since the given time, with their demand counts.
func (s *PostgresStore) ListPriorityCandidates(
	ctx context.Context,
	since time.Time,
) ([]domain.PriorityCandidate, error) {
	rows, err := s.pool.Query(ctx, queryListPriorityCandidates, since)
	if err != nil {
		return nil, fmt.Errorf("querying priority candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.PriorityCandidate
	for rows.Next() {
		var c domain.PriorityCandidate
		if err := rows.Scan(append(productDest(&c.Product),
			&c.WishlistCount, &c.RecentRecommendations)...); err != nil {
			return nil, fmt.Errorf("scanning priority candidate: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// FindAlternatives returns same-category products in the price band, best
// scored first.
func (s *PostgresStore) FindAlternatives(
	ctx context.Context,
	q *AlternativeQuery,
) ([]domain.AlternativeProduct, error) {
	rows, err := s.pool.Query(ctx, queryFindAlternatives,
		q.CategoryID, q.ProductID, q.MinPrice, q.MaxPrice, q.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying alternatives: %w", err)
	}
	defer rows.Close()

	var out []domain.AlternativeProduct
	for rows.Next() {
		var a domain.AlternativeProduct
		if err := rows.Scan(
			&a.UUID, &a.Name, &a.BrandName, &a.CurrentPrice,
			&a.MainImage, &a.PurchaseabilityScore, &a.ProductURL,
		); err != nil {
			return nil, fmt.Errorf("scanning alternative: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// GetStoreConfig retrieves the check policy for a store.
func (s *PostgresStore) GetStoreConfig(
	ctx context.Context,
	storeID int64,
) (*domain.StoreAPIConfig, error) {
	c := &domain.StoreAPIConfig{}
	if err := scanStoreConfig(s.pool.QueryRow(ctx, queryGetStoreConfig, storeID), c); err != nil {
		return nil, notFound(err, "store config")
	}
	return c, nil
}

// ListStoreConfigs returns every store's check policy and health.
func (s *PostgresStore) ListStoreConfigs(ctx context.Context) ([]domain.StoreAPIConfig, error) {
	rows, err := s.pool.Query(ctx, queryListStoreConfigs)
	if err != nil {
		return nil, fmt.Errorf("querying store configs: %w", err)
	}
	defer rows.Close()

	var out []domain.StoreAPIConfig
	for rows.Next() {
		var c domain.StoreAPIConfig
		if err := scanStoreConfig(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning store config: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// UpsertStoreConfig inserts or replaces a store's check policy. Health
// counters are left untouched on update.
func (s *PostgresStore) UpsertStoreConfig(ctx context.Context, c *domain.StoreAPIConfig) error {
	headers, err := json.Marshal(nonNilHeaders(c.RequestHeaders))
	if err != nil {
		return fmt.Errorf("marshaling request headers: %w", err)
	}

	args := pgx.NamedArgs{
		"store_id":              c.StoreID,
		"api_type":              string(c.APIType),
		"inventory_check_url":   c.InventoryCheckURL,
		"inventory_selector":    c.InventorySelector,
		"price_selector":        c.PriceSelector,
		"availability_selector": c.AvailabilitySelector,
		"request_headers":       headers,
		"request_delay_seconds": c.RequestDelaySeconds,
		"max_retries":           c.MaxRetries,
		"timeout_seconds":       c.TimeoutSeconds,
		"success_indicators":    nonNilStrings(c.SuccessIndicators),
		"unavailable_keywords":  nonNilStrings(c.UnavailableKeywords),
		"parser_key":            c.Parser(),
		"render_js":             c.RenderJS,
		"optimistic_default":    c.OptimisticDefault,
		"daily_limit":           c.DailyLimit,
		"is_active":             c.IsActive,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertStoreConfig, args).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting store config: %w", err)
	}
	return nil
}

// UpdateStoreHealth applies fn to a store's config under a row lock and
// persists the resulting health fields.
func (s *PostgresStore) UpdateStoreHealth(
	ctx context.Context,
	storeID int64,
	fn HealthMutator,
) (*domain.StoreAPIConfig, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning store health tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c := &domain.StoreAPIConfig{}
	if err := scanStoreConfig(tx.QueryRow(ctx, queryGetStoreConfigForUpdate, storeID), c); err != nil {
		return nil, notFound(err, "store config")
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, queryUpdateStoreHealth,
		storeID, c.IsActive, c.LastSuccessfulCheck, c.ConsecutiveFailures,
	).Scan(&c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("updating store health: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing store health: %w", err)
	}
	return c, nil
}

// GetInventoryStatus retrieves the availability state for a product.
func (s *PostgresStore) GetInventoryStatus(
	ctx context.Context,
	productID int64,
) (*domain.InventoryStatus, error) {
	st := &domain.InventoryStatus{}
	if err := scanInventoryStatus(s.pool.QueryRow(ctx, queryGetInventoryStatus, productID), st); err != nil {
		return nil, notFound(err, "inventory status")
	}
	return st, nil
}

// UpdateInventoryStatus creates the status row if needed, locks it, applies
// fn and writes the result. prev is the state before fn ran.
func (s *PostgresStore) UpdateInventoryStatus(
	ctx context.Context,
	productID int64,
	fn StatusMutator,
) (*domain.InventoryStatus, *domain.InventoryStatus, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning inventory tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, queryEnsureInventoryStatus, productID); err != nil {
		return nil, nil, fmt.Errorf("ensuring inventory status: %w", err)
	}

	cur := &domain.InventoryStatus{}
	if err := scanInventoryStatus(tx.QueryRow(ctx, queryLockInventoryStatus, productID), cur); err != nil {
		return nil, nil, fmt.Errorf("locking inventory status: %w", err)
	}
	prev := cur.Clone()

	if err := fn(cur); err != nil {
		return nil, nil, err
	}

	sizes, err := json.Marshal(nonNilSizes(cur.SizeStock))
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling size stock: %w", err)
	}

	args := pgx.NamedArgs{
		"product_id":                    productID,
		"stock_status":                  string(cur.StockStatus),
		"availability_status":           string(cur.AvailabilityStatus),
		"is_purchasable":                cur.IsPurchasable,
		"stock_quantity":                cur.StockQuantity,
		"size_stock":                    sizes,
		"current_price":                 cur.CurrentPrice,
		"price_changed":                 cur.PriceChanged,
		"price_change_percentage":       cur.PriceChangePercentage,
		"last_checked_at":               cur.LastCheckedAt,
		"last_available_at":             cur.LastAvailableAt,
		"consecutive_unavailable_count": cur.ConsecutiveUnavailableCount,
		"check_failed_count":            cur.CheckFailedCount,
		"last_error_message":            cur.LastErrorMessage,
	}

	if err := tx.QueryRow(ctx, queryUpdateInventoryStatus, args).Scan(&cur.UpdatedAt); err != nil {
		return nil, nil, fmt.Errorf("updating inventory status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("committing inventory status: %w", err)
	}
	return prev, cur, nil
}

// InsertCheckLog appends an audit record.
func (s *PostgresStore) InsertCheckLog(ctx context.Context, l *domain.InventoryCheckLog) error {
	data := l.APIResponseData
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}
	checkedAt := l.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}

	args := pgx.NamedArgs{
		"product_id":            l.ProductID,
		"store_id":              l.StoreID,
		"check_type":            string(l.CheckType),
		"status":                string(l.Status),
		"previous_stock_status": string(l.PreviousStockStatus),
		"new_stock_status":      string(l.NewStockStatus),
		"response_time_ms":      l.ResponseTimeMs,
		"api_response_data":     []byte(data),
		"error_message":         l.ErrorMessage,
		"error_kind":            string(l.ErrorKind),
		"price_before":          l.PriceBefore,
		"price_after":           l.PriceAfter,
		"availability_changed":  l.AvailabilityChanged,
		"checked_at":            checkedAt,
	}

	if err := s.pool.QueryRow(ctx, queryInsertCheckLog, args).Scan(&l.ID); err != nil {
		return fmt.Errorf("inserting check log: %w", err)
	}
	l.CheckedAt = checkedAt
	return nil
}

// ListCheckLogs queries audit records with optional filters, returning the
// page and the total count.
func (s *PostgresStore) ListCheckLogs(
	ctx context.Context,
	q *CheckLogQuery,
) ([]domain.InventoryCheckLog, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting check logs: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying check logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.InventoryCheckLog
	for rows.Next() {
		var l domain.InventoryCheckLog
		var data []byte
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.StoreID, &l.CheckType, &l.Status,
			&l.PreviousStockStatus, &l.NewStockStatus, &l.ResponseTimeMs,
			&data, &l.ErrorMessage, &l.ErrorKind,
			&l.PriceBefore, &l.PriceAfter, &l.AvailabilityChanged, &l.CheckedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning check log: %w", err)
		}
		l.APIResponseData = data
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating check logs: %w", err)
	}

	return logs, total, nil
}

// GetCheckHistory summarizes a product's audit records since the given time.
func (s *PostgresStore) GetCheckHistory(
	ctx context.Context,
	productID int64,
	since time.Time,
) (*domain.CheckHistory, error) {
	h := &domain.CheckHistory{}
	if err := s.pool.QueryRow(ctx, queryCheckHistory, productID, since).Scan(
		&h.TotalChecks, &h.SuccessfulChecks, &h.AvailableChecks,
		&h.PriceChanges, &h.StockOuts,
	); err != nil {
		return nil, fmt.Errorf("querying check history: %w", err)
	}
	return h, nil
}

// GetScore retrieves the stored purchaseability score for a product.
func (s *PostgresStore) GetScore(
	ctx context.Context,
	productID int64,
) (*domain.PurchaseabilityScore, error) {
	sc := &domain.PurchaseabilityScore{}
	err := s.pool.QueryRow(ctx, queryGetScore, productID).Scan(
		&sc.ProductID, &sc.OverallScore, &sc.AvailabilityScore, &sc.ReliabilityScore,
		&sc.PriceStabilityScore, &sc.DeliveryScore, &sc.HistoricalAvailabilityRate,
		&sc.AverageStockDurationDays, &sc.PriceChangeFrequency,
		&sc.PredictedStockOutDate, &sc.PredictedRestockDate, &sc.ConfidenceLevel,
		&sc.RecommendationPriority, &sc.LastCalculatedAt,
	)
	if err != nil {
		return nil, notFound(err, "score")
	}
	return sc, nil
}

// UpsertScore writes a product's purchaseability score.
func (s *PostgresStore) UpsertScore(ctx context.Context, sc *domain.PurchaseabilityScore) error {
	args := pgx.NamedArgs{
		"product_id":                   sc.ProductID,
		"overall_score":                sc.OverallScore,
		"availability_score":           sc.AvailabilityScore,
		"reliability_score":            sc.ReliabilityScore,
		"price_stability_score":        sc.PriceStabilityScore,
		"delivery_score":               sc.DeliveryScore,
		"historical_availability_rate": sc.HistoricalAvailabilityRate,
		"average_stock_duration_days":  sc.AverageStockDurationDays,
		"price_change_frequency":       sc.PriceChangeFrequency,
		"predicted_stock_out_date":     sc.PredictedStockOutDate,
		"predicted_restock_date":       sc.PredictedRestockDate,
		"confidence_level":             sc.ConfidenceLevel,
		"recommendation_priority":      sc.RecommendationPriority,
		"last_calculated_at":           sc.LastCalculatedAt,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertScore, args); err != nil {
		return fmt.Errorf("upserting score: %w", err)
	}
	return nil
}

// GetInventoryStats aggregates dashboard statistics. since bounds the
// recent-activity window.
func (s *PostgresStore) GetInventoryStats(
	ctx context.Context,
	since time.Time,
) (*domain.InventoryStats, error) {
	st := &domain.InventoryStats{}

	o := &st.Overview
	if err := s.pool.QueryRow(ctx, queryStatsOverview, since).Scan(
		&o.TotalProducts, &o.InStock, &o.LowStock, &o.OutOfStock,
		&o.Unknown, &o.Purchasable, &o.RecentlyChecked,
	); err != nil {
		return nil, fmt.Errorf("querying overview stats: %w", err)
	}

	sc := &st.Scores
	if err := s.pool.QueryRow(ctx, queryStatsScores).Scan(
		&sc.AverageOverallScore, &sc.AverageAvailabilityScore,
		&sc.AverageReliabilityScore, &sc.HighScoreProducts,
	); err != nil {
		return nil, fmt.Errorf("querying score stats: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryStatsStores)
	if err != nil {
		return nil, fmt.Errorf("querying store stats: %w", err)
	}
	defer rows.Close()

	st.Stores = []domain.StoreStats{}
	for rows.Next() {
		var ss domain.StoreStats
		if err := rows.Scan(
			&ss.StoreID, &ss.Name, &ss.IsActive, &ss.ConsecutiveFailures,
			&ss.ProductCount, &ss.AvailableCount,
		); err != nil {
			return nil, fmt.Errorf("scanning store stats: %w", err)
		}
		st.Stores = append(st.Stores, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating store stats: %w", err)
	}

	a := &st.RecentActivity
	if err := s.pool.QueryRow(ctx, queryStatsActivity, since).Scan(
		&a.TotalChecks, &a.SuccessfulChecks, &a.FailedChecks, &a.AverageResponseTimeMs,
	); err != nil {
		return nil, fmt.Errorf("querying activity stats: %w", err)
	}
	a.SuccessRate = successRate(a.SuccessfulChecks, a.TotalChecks)

	return st, nil
}

// successRate is the percentage of successful checks, rounded to one decimal.
func successRate(successful, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(successful)/float64(total)*1000) / 10
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // held by another holder
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// queryProducts is a helper for product list queries.
func (s *PostgresStore) queryProducts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func productDest(p *domain.Product) []any {
	return []any{
		&p.ID, &p.UUID, &p.Name, &p.ExternalID, &p.CategoryID,
		&p.BrandName, &p.StoreID, &p.StoreName,
		&p.OriginalPrice, &p.SalePrice, &p.Currency,
		&p.MainImage, &p.ProductURL, &p.IsAvailable, &p.CreatedAt,
	}
}

func scanProduct(row scannable, p *domain.Product) error {
	return row.Scan(productDest(p)...)
}

func scanStoreConfig(row scannable, c *domain.StoreAPIConfig) error {
	var headers []byte
	if err := row.Scan(
		&c.ID, &c.StoreID, &c.StoreName, &c.APIType, &c.InventoryCheckURL,
		&c.InventorySelector, &c.PriceSelector, &c.AvailabilitySelector,
		&headers, &c.RequestDelaySeconds, &c.MaxRetries, &c.TimeoutSeconds,
		&c.SuccessIndicators, &c.UnavailableKeywords, &c.ParserKey, &c.RenderJS,
		&c.OptimisticDefault, &c.DailyLimit,
		&c.IsActive, &c.LastSuccessfulCheck, &c.ConsecutiveFailures,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return err
	}
	if len(headers) > 0 {
		if err := json.Unmarshal(headers, &c.RequestHeaders); err != nil {
			return fmt.Errorf("unmarshaling request headers: %w", err)
		}
	}
	return nil
}

func scanInventoryStatus(row scannable, st *domain.InventoryStatus) error {
	var sizes []byte
	if err := row.Scan(
		&st.ID, &st.ProductID, &st.StockStatus, &st.AvailabilityStatus, &st.IsPurchasable,
		&st.StockQuantity, &sizes, &st.CurrentPrice, &st.PriceChanged,
		&st.PriceChangePercentage, &st.LastCheckedAt, &st.LastAvailableAt,
		&st.ConsecutiveUnavailableCount, &st.CheckFailedCount, &st.LastErrorMessage,
		&st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return err
	}
	st.SizeStock = map[string]int{}
	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &st.SizeStock); err != nil {
			return fmt.Errorf("unmarshaling size stock: %w", err)
		}
	}
	return nil
}

// notFound maps pgx.ErrNoRows to ErrNotFound and wraps anything else.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("querying %s: %w", what, err)
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilHeaders(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilSizes(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
