package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Catalog queries. Products are joined with their store and brand so callers
// get names without a second round trip.
const (
	productColumns = `
		p.id, p.uuid::text, p.name, p.external_id, p.category_id,
		COALESCE(b.name, ''), p.store_id, s.name,
		p.original_price::float8, p.sale_price::float8, p.currency,
		p.main_image, p.product_url, p.is_available, p.created_at`

	productFrom = `
		FROM products p
		JOIN stores s ON s.id = p.store_id
		LEFT JOIN brands b ON b.id = p.brand_id`

	queryGetProductByID = `SELECT` + productColumns + productFrom + `
		WHERE p.id = $1`

	queryGetProductByUUID = `SELECT` + productColumns + productFrom + `
		WHERE p.uuid = $1::uuid`

	queryListProductsByIDs = `SELECT` + productColumns + productFrom + `
		WHERE p.id = ANY($1)`

	queryListProductsByUUIDs = `SELECT` + productColumns + productFrom + `
		WHERE p.uuid::text = ANY($1)`

	queryListProductsNeedingCheck = `SELECT` + productColumns + productFrom + `
		LEFT JOIN inventory_status i ON i.product_id = p.id
		WHERE p.is_available
		  AND s.is_active
		  AND (i.id IS NULL OR i.last_checked_at IS NULL OR i.last_checked_at < $1)
		ORDER BY i.last_checked_at ASC NULLS FIRST, p.id
		LIMIT $2`

	queryListPriorityCandidates = `
		WITH wl AS (
			SELECT product_id, COUNT(*) AS n
			FROM user_wishlists
			GROUP BY product_id
		), rec AS (
			SELECT srp.product_id, COUNT(*) AS n
			FROM style_recommendation_products srp
			JOIN style_recommendations r ON r.id = srp.recommendation_id
			WHERE r.created_at >= $1
			GROUP BY srp.product_id
		)
		SELECT` + productColumns + `,
			COALESCE(wl.n, 0), COALESCE(rec.n, 0)` + productFrom + `
		LEFT JOIN wl ON wl.product_id = p.id
		LEFT JOIN rec ON rec.product_id = p.id
		WHERE p.is_available
		  AND s.is_active
		  AND (COALESCE(wl.n, 0) > 0 OR COALESCE(rec.n, 0) > 0)
		ORDER BY COALESCE(wl.n, 0) DESC, COALESCE(rec.n, 0) DESC, p.id`

	queryFindAlternatives = `
		SELECT p.uuid::text, p.name, COALESCE(b.name, ''),
			COALESCE(p.sale_price, p.original_price)::float8,
			p.main_image, COALESCE(ps.overall_score, 50), p.product_url
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN purchaseability_scores ps ON ps.product_id = p.id
		WHERE p.category_id IS NOT DISTINCT FROM $1
		  AND p.is_available
		  AND p.id <> $2
		  AND p.original_price BETWEEN $3 AND $4
		ORDER BY COALESCE(ps.overall_score, 50) DESC, p.created_at DESC, p.id
		LIMIT $5`
)

// Store API config queries.
const (
	storeConfigColumns = `
		c.id, c.store_id, s.name, c.api_type, c.inventory_check_url,
		c.inventory_selector, c.price_selector, c.availability_selector,
		c.request_headers, c.request_delay_seconds, c.max_retries, c.timeout_seconds,
		c.success_indicators, c.unavailable_keywords, c.parser_key, c.render_js,
		c.optimistic_default, c.daily_limit,
		c.is_active, c.last_successful_check, c.consecutive_failures,
		c.created_at, c.updated_at`

	storeConfigFrom = `
		FROM store_api_configs c
		JOIN stores s ON s.id = c.store_id`

	queryGetStoreConfig = `SELECT` + storeConfigColumns + storeConfigFrom + `
		WHERE c.store_id = $1`

	queryGetStoreConfigForUpdate = queryGetStoreConfig + `
		FOR UPDATE OF c`

	queryListStoreConfigs = `SELECT` + storeConfigColumns + storeConfigFrom + `
		ORDER BY s.name`

	queryUpsertStoreConfig = `
		INSERT INTO store_api_configs (
			store_id, api_type, inventory_check_url,
			inventory_selector, price_selector, availability_selector,
			request_headers, request_delay_seconds, max_retries, timeout_seconds,
			success_indicators, unavailable_keywords, parser_key, render_js,
			optimistic_default, daily_limit, is_active
		) VALUES (
			@store_id, @api_type, @inventory_check_url,
			@inventory_selector, @price_selector, @availability_selector,
			@request_headers, @request_delay_seconds, @max_retries, @timeout_seconds,
			@success_indicators, @unavailable_keywords, @parser_key, @render_js,
			@optimistic_default, @daily_limit, @is_active
		)
		ON CONFLICT (store_id) DO UPDATE SET
			api_type = EXCLUDED.api_type,
			inventory_check_url = EXCLUDED.inventory_check_url,
			inventory_selector = EXCLUDED.inventory_selector,
			price_selector = EXCLUDED.price_selector,
			availability_selector = EXCLUDED.availability_selector,
			request_headers = EXCLUDED.request_headers,
			request_delay_seconds = EXCLUDED.request_delay_seconds,
			max_retries = EXCLUDED.max_retries,
			timeout_seconds = EXCLUDED.timeout_seconds,
			success_indicators = EXCLUDED.success_indicators,
			unavailable_keywords = EXCLUDED.unavailable_keywords,
			parser_key = EXCLUDED.parser_key,
			render_js = EXCLUDED.render_js,
			optimistic_default = EXCLUDED.optimistic_default,
			daily_limit = EXCLUDED.daily_limit,
			is_active = EXCLUDED.is_active,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryUpdateStoreHealth = `
		UPDATE store_api_configs SET
			is_active = $2,
			last_successful_check = $3,
			consecutive_failures = $4,
			updated_at = now()
		WHERE store_id = $1
		RETURNING updated_at`
)

// Inventory status queries.
const (
	inventoryStatusColumns = `
		id, product_id, stock_status, availability_status, is_purchasable,
		stock_quantity, size_stock, current_price::float8, price_changed,
		price_change_percentage::float8, last_checked_at, last_available_at,
		consecutive_unavailable_count, check_failed_count, last_error_message,
		created_at, updated_at`

	queryGetInventoryStatus = `
		SELECT` + inventoryStatusColumns + `
		FROM inventory_status
		WHERE product_id = $1`

	queryEnsureInventoryStatus = `
		INSERT INTO inventory_status (product_id)
		VALUES ($1)
		ON CONFLICT (product_id) DO NOTHING`

	queryLockInventoryStatus = queryGetInventoryStatus + `
		FOR UPDATE`

	queryUpdateInventoryStatus = `
		UPDATE inventory_status SET
			stock_status = @stock_status,
			availability_status = @availability_status,
			is_purchasable = @is_purchasable,
			stock_quantity = @stock_quantity,
			size_stock = @size_stock,
			current_price = @current_price,
			price_changed = @price_changed,
			price_change_percentage = @price_change_percentage,
			last_checked_at = @last_checked_at,
			last_available_at = @last_available_at,
			consecutive_unavailable_count = @consecutive_unavailable_count,
			check_failed_count = @check_failed_count,
			last_error_message = @last_error_message,
			updated_at = now()
		WHERE product_id = @product_id
		RETURNING updated_at`
)

// Audit log queries.
const (
	queryInsertCheckLog = `
		INSERT INTO inventory_check_logs (
			product_id, store_id, check_type, status,
			previous_stock_status, new_stock_status, response_time_ms,
			api_response_data, error_message, error_kind,
			price_before, price_after, availability_changed, checked_at
		) VALUES (
			@product_id, @store_id, @check_type, @status,
			@previous_stock_status, @new_stock_status, @response_time_ms,
			@api_response_data, @error_message, @error_kind,
			@price_before, @price_after, @availability_changed, @checked_at
		)
		RETURNING id`

	queryCheckHistory = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('success', 'partial')),
			COUNT(*) FILTER (WHERE status IN ('success', 'partial')
				AND COALESCE((api_response_data->>'is_available')::boolean, false)),
			COUNT(*) FILTER (WHERE status IN ('success', 'partial')
				AND COALESCE((api_response_data->>'price_changed')::boolean, false)),
			COUNT(*) FILTER (WHERE status IN ('success', 'partial')
				AND availability_changed
				AND NOT COALESCE((api_response_data->>'is_available')::boolean, false))
		FROM inventory_check_logs
		WHERE product_id = $1 AND checked_at >= $2`
)

// Score queries.
const (
	queryGetScore = `
		SELECT product_id, overall_score, availability_score, reliability_score,
			price_stability_score, delivery_score, historical_availability_rate,
			average_stock_duration_days, price_change_frequency,
			predicted_stock_out_date, predicted_restock_date, confidence_level,
			recommendation_priority, last_calculated_at
		FROM purchaseability_scores
		WHERE product_id = $1`

	queryUpsertScore = `
		INSERT INTO purchaseability_scores (
			product_id, overall_score, availability_score, reliability_score,
			price_stability_score, delivery_score, historical_availability_rate,
			average_stock_duration_days, price_change_frequency,
			predicted_stock_out_date, predicted_restock_date, confidence_level,
			recommendation_priority, last_calculated_at
		) VALUES (
			@product_id, @overall_score, @availability_score, @reliability_score,
			@price_stability_score, @delivery_score, @historical_availability_rate,
			@average_stock_duration_days, @price_change_frequency,
			@predicted_stock_out_date, @predicted_restock_date, @confidence_level,
			@recommendation_priority, @last_calculated_at
		)
		ON CONFLICT (product_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			availability_score = EXCLUDED.availability_score,
			reliability_score = EXCLUDED.reliability_score,
			price_stability_score = EXCLUDED.price_stability_score,
			delivery_score = EXCLUDED.delivery_score,
			historical_availability_rate = EXCLUDED.historical_availability_rate,
			average_stock_duration_days = EXCLUDED.average_stock_duration_days,
			price_change_frequency = EXCLUDED.price_change_frequency,
			predicted_stock_out_date = EXCLUDED.predicted_stock_out_date,
			predicted_restock_date = EXCLUDED.predicted_restock_date,
			confidence_level = EXCLUDED.confidence_level,
			recommendation_priority = EXCLUDED.recommendation_priority,
			last_calculated_at = EXCLUDED.last_calculated_at`
)

// Statistics queries.
const (
	queryStatsOverview = `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_available),
			COUNT(*) FILTER (WHERE stock_status = 'in_stock'),
			COUNT(*) FILTER (WHERE stock_status = 'low_stock'),
			COUNT(*) FILTER (WHERE stock_status = 'out_of_stock'),
			COUNT(*) FILTER (WHERE stock_status = 'unknown'),
			COUNT(*) FILTER (WHERE is_purchasable),
			COUNT(*) FILTER (WHERE last_checked_at >= $1)
		FROM inventory_status`

	queryStatsScores = `
		SELECT
			COALESCE(AVG(overall_score), 0)::float8,
			COALESCE(AVG(availability_score), 0)::float8,
			COALESCE(AVG(reliability_score), 0)::float8,
			COUNT(*) FILTER (WHERE overall_score >= 80)
		FROM purchaseability_scores`

	queryStatsStores = `
		SELECT s.id, s.name,
			COALESCE(c.is_active, s.is_active),
			COALESCE(c.consecutive_failures, 0),
			COUNT(p.id) FILTER (WHERE p.is_available),
			COUNT(i.id) FILTER (WHERE i.is_purchasable)
		FROM stores s
		LEFT JOIN store_api_configs c ON c.store_id = s.id
		LEFT JOIN products p ON p.store_id = s.id
		LEFT JOIN inventory_status i ON i.product_id = p.id
		WHERE s.is_active
		GROUP BY s.id, s.name, c.is_active, c.consecutive_failures
		ORDER BY s.name`

	queryStatsActivity = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('success', 'partial')),
			COUNT(*) FILTER (WHERE status IN ('failed', 'timeout')),
			COALESCE(AVG(response_time_ms), 0)::float8
		FROM inventory_check_logs
		WHERE checked_at >= $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
