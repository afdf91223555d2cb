package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/inventory-tracker/tools/dashgen/dashboards"
	"github.com/donaldgifford/inventory-tracker/tools/dashgen/rules"
	"github.com/donaldgifford/inventory-tracker/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	arts, res, err := generate(cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !res.Ok() {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "invalid: %s\n", e)
		}
		return fmt.Errorf("%d validation errors", len(res.Errors))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range arts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, validate.Result, error) {
	var (
		arts []artifact
		res  validate.Result
		errs []error
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, res, fmt.Errorf("building dashboard: %w", err)
		}
		res.Merge(validate.Dashboard(dash, KnownMetrics))

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, res, fmt.Errorf("marshaling dashboard: %w", err)
		}
		arts = append(arts, artifact{
			path: filepath.Join("grafana", "data", "invt-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
			res.Merge(validate.Rules(cr, KnownMetrics))

			data, err := yaml.Marshal(cr)
			if err != nil {
				errs = append(errs, fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err))
				continue
			}
			arts = append(arts, artifact{
				path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"),
				data: append([]byte(generatedHeader), data...),
			})

			// The compose stack's Prometheus loads plain rule files.
			data, err = yaml.Marshal(cr.File())
			if err != nil {
				errs = append(errs, fmt.Errorf("marshaling %s rule file: %w", cr.Metadata.Name, err))
				continue
			}
			arts = append(arts, artifact{
				path: filepath.Join("prometheus", "rules", cr.Metadata.Name+".rules.yaml"),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	return arts, res, errors.Join(errs...)
}
