package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/inventory-tracker/internal/config"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	"github.com/donaldgifford/inventory-tracker/pkg/logger"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage store check policies",
}

var storesLoadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Create or update store check policies from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoresLoad,
}

func init() {
	storesCmd.AddCommand(storesLoadCmd)
	rootCmd.AddCommand(storesCmd)
}

// storeFile is the on-disk shape of a store policy file.
type storeFile struct {
	Stores []storePolicy `yaml:"stores"`
}

type storePolicy struct {
	StoreID              int64             `yaml:"store_id"`
	Name                 string            `yaml:"name"`
	APIType              string            `yaml:"api_type"`
	InventoryCheckURL    string            `yaml:"inventory_check_url"`
	InventorySelector    string            `yaml:"inventory_selector"`
	PriceSelector        string            `yaml:"price_selector"`
	AvailabilitySelector string            `yaml:"availability_selector"`
	RequestHeaders       map[string]string `yaml:"request_headers"`
	RequestDelay         time.Duration     `yaml:"request_delay"`
	MaxRetries           int               `yaml:"max_retries"`
	Timeout              time.Duration     `yaml:"timeout"`
	SuccessIndicators    []string          `yaml:"success_indicators"`
	UnavailableKeywords  []string          `yaml:"unavailable_keywords"`
	Parser               string            `yaml:"parser"`
	RenderJS             bool              `yaml:"render_js"`
	OptimisticDefault    *bool             `yaml:"optimistic_default"`
	DailyLimit           int64             `yaml:"daily_limit"`
	Active               *bool             `yaml:"active"`
}

func (p *storePolicy) toConfig() (*domain.StoreAPIConfig, error) {
	if p.StoreID <= 0 {
		return nil, fmt.Errorf("store %q: store_id must be positive", p.Name)
	}
	apiType := domain.APIType(p.APIType)
	switch apiType {
	case domain.APITypeREST, domain.APITypeScraping, domain.APITypeGraphQL, domain.APITypeRSS:
	default:
		return nil, fmt.Errorf("store %d: unknown api_type %q", p.StoreID, p.APIType)
	}

	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return &domain.StoreAPIConfig{
		StoreID:              p.StoreID,
		StoreName:            p.Name,
		APIType:              apiType,
		InventoryCheckURL:    p.InventoryCheckURL,
		InventorySelector:    p.InventorySelector,
		PriceSelector:        p.PriceSelector,
		AvailabilitySelector: p.AvailabilitySelector,
		RequestHeaders:       p.RequestHeaders,
		RequestDelaySeconds:  p.RequestDelay.Seconds(),
		MaxRetries:           p.MaxRetries,
		TimeoutSeconds:       int(p.Timeout / time.Second),
		SuccessIndicators:    p.SuccessIndicators,
		UnavailableKeywords:  p.UnavailableKeywords,
		ParserKey:            p.Parser,
		RenderJS:             p.RenderJS,
		OptimisticDefault:    p.OptimisticDefault,
		DailyLimit:           p.DailyLimit,
		IsActive:             active,
	}, nil
}

func loadStoreFile(path string) ([]*domain.StoreAPIConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return nil, fmt.Errorf("parsing store file: %w", err)
	}

	cfgs := make([]*domain.StoreAPIConfig, 0, len(f.Stores))
	var errs []error
	for i := range f.Stores {
		c, err := f.Stores[i].toConfig()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfgs = append(cfgs, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfgs, nil
}

func runStoresLoad(cmd *cobra.Command, args []string) error {
	cfgs, err := loadStoreFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	for _, c := range cfgs {
		if err := pg.UpsertStoreConfig(ctx, c); err != nil {
			return fmt.Errorf("saving store %d: %w", c.StoreID, err)
		}
		log.Info("store policy saved", "store_id", c.StoreID, "api_type", c.APIType, "active", c.IsActive)
	}
	return nil
}
