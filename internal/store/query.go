package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseCheckLogsSelect = `SELECT id, product_id, store_id, check_type, status,
	previous_stock_status, new_stock_status, response_time_ms,
	api_response_data, error_message, error_kind,
	price_before::float8, price_after::float8, availability_changed, checked_at
FROM inventory_check_logs`

const countCheckLogsSelect = "SELECT COUNT(*) FROM inventory_check_logs"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an audit log
// query. It returns the data query, the count query and the positional
// parameters shared by both.
func (q *CheckLogQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ProductID != nil {
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", paramIdx))
		args = append(args, *q.ProductID)
		paramIdx++
	}

	if q.StoreID != nil {
		conditions = append(conditions, fmt.Sprintf("store_id = $%d", paramIdx))
		args = append(args, *q.StoreID)
		paramIdx++
	}

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.CheckType != nil {
		conditions = append(conditions, fmt.Sprintf("check_type = $%d", paramIdx))
		args = append(args, *q.CheckType)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("checked_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY checked_at DESC, id DESC LIMIT %d OFFSET %d",
		baseCheckLogsSelect, whereClause, limit, offset,
	)

	countSQL = countCheckLogsSelect + whereClause

	return dataSQL, countSQL, args
}
