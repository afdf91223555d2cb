// Package store defines the datastore abstraction for the inventory tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// StatusMutator mutates a product's inventory status inside the row lock.
type StatusMutator func(s *domain.InventoryStatus) error

// HealthMutator mutates a store's health fields inside the row lock.
type HealthMutator func(c *domain.StoreAPIConfig) error

// AlternativeQuery selects substitutes for a product.
type AlternativeQuery struct {
	ProductID  int64
	CategoryID *int64
	MinPrice   float64
	MaxPrice   float64
	Limit      int
}

// CheckLogQuery defines optional filters for audit log queries.
type CheckLogQuery struct {
	ProductID *int64
	StoreID   *int64
	Status    *string
	CheckType *string
	Since     *time.Time
	Limit     int // default 50
	Offset    int
}

// Store defines all data access operations for the inventory tracker.
type Store interface {
	// Catalog (read-only)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductByUUID(ctx context.Context, uuid string) (*domain.Product, error)
	ListProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListProductsByUUIDs(ctx context.Context, uuids []string) ([]domain.Product, error)
	ListProductsNeedingCheck(ctx context.Context, staleBefore time.Time, limit int) ([]domain.Product, error)
	ListPriorityCandidates(ctx context.Context, since time.Time) ([]domain.PriorityCandidate, error)
	FindAlternatives(ctx context.Context, q *AlternativeQuery) ([]domain.AlternativeProduct, error)

	// Store API configs
	GetStoreConfig(ctx context.Context, storeID int64) (*domain.StoreAPIConfig, error)
	ListStoreConfigs(ctx context.Context) ([]domain.StoreAPIConfig, error)
	UpsertStoreConfig(ctx context.Context, c *domain.StoreAPIConfig) error
	UpdateStoreHealth(ctx context.Context, storeID int64, fn HealthMutator) (*domain.StoreAPIConfig, error)

	// Inventory status
	GetInventoryStatus(ctx context.Context, productID int64) (*domain.InventoryStatus, error)
	UpdateInventoryStatus(
		ctx context.Context,
		productID int64,
		fn StatusMutator,
	) (prev *domain.InventoryStatus, next *domain.InventoryStatus, err error)

	// Audit log
	InsertCheckLog(ctx context.Context, l *domain.InventoryCheckLog) error
	ListCheckLogs(ctx context.Context, q *CheckLogQuery) ([]domain.InventoryCheckLog, int, error)
	GetCheckHistory(ctx context.Context, productID int64, since time.Time) (*domain.CheckHistory, error)

	// Scores
	GetScore(ctx context.Context, productID int64) (*domain.PurchaseabilityScore, error)
	UpsertScore(ctx context.Context, s *domain.PurchaseabilityScore) error

	// Statistics
	GetInventoryStats(ctx context.Context, since time.Time) (*domain.InventoryStats, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
