package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/inventory-tracker/internal/config"
	"github.com/donaldgifford/inventory-tracker/pkg/logger"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

var checkProducts []string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one inventory check and exit",
	Long: "Without --product, runs the scheduled priority-then-routine check once " +
		"(honoring the scheduler lock). With --product, checks exactly those products.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkProducts, "product", nil, "product UUID to check (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")

	if len(checkProducts) > 0 {
		results, err := checkByUUID(ctx, a, checkProducts)
		if encErr := out.Encode(results); encErr != nil {
			return errors.Join(err, encErr)
		}
		return err
	}

	sched, err := a.newScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	sum, err := sched.RunInventoryCheck(ctx)
	if err != nil {
		return err
	}
	return out.Encode(sum)
}

func checkByUUID(ctx context.Context, a *app, uuids []string) ([]domain.CheckResult, error) {
	products, err := a.store.ListProductsByUUIDs(ctx, uuids)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	if len(products) == 0 {
		return nil, errors.New("no matching products")
	}
	return a.engine.RunBatch(ctx, products, domain.CheckManual)
}
