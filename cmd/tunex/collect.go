package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/tunex/pkg/errors"
	"github.com/YuminosukeSato/tunex/pkg/log"
	"github.com/YuminosukeSato/tunex/tune"
)

func newCollectCmd() *cobra.Command {
	var (
		cfgPath string
		cfg     = Config{LogLevel: "info"}
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect per-fit model characteristics into a table",
		Long: `Collect walks every fit of a serialized tuning result, gathers the
extraction metadata attached by the tuning run's extract hook, and writes the
resulting table as CSV. Failed fits and fits without metadata contribute no
rows; missing cells render as NA.`,
		Example: `  tunex collect --input run.json
  tunex collect --input run.json --metrics --wide --out tradeoff.csv
  tunex collect --config tunex.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath != "" {
				fileCfg, err := LoadConfig(cfgPath)
				if err != nil {
					return err
				}
				cfg.Merge(fileCfg, cmd.Flags().Changed)
			}
			log.SetupLogger(cfg.LogLevel)
			return runCollect(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Input, "input", "i", "", `tuning result JSON file ("-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.Output, "out", "o", "", "CSV output file (default stdout)")
	cmd.Flags().BoolVar(&cfg.Metrics, "metrics", false, "join resample-averaged performance metrics")
	cmd.Flags().BoolVar(&cfg.Wide, "wide", false, "pivot to one row per hyperparameter combination")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file with defaults")

	return cmd
}

func runCollect(cfg Config) error {
	if cfg.Input == "" {
		return errors.NewValidationError("input", "no tuning result given", cfg.Input)
	}

	var in io.Reader
	if cfg.Input == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrapf(err, "opening tuning result %s", cfg.Input)
		}
		defer f.Close()
		in = f
	}

	res, err := tune.ReadResult(in)
	if err != nil {
		return err
	}

	var opts []tune.CollectOption
	if cfg.Metrics {
		opts = append(opts, tune.WithMetrics())
	}
	if cfg.Wide {
		opts = append(opts, tune.Wide())
	}

	table, err := tune.CollectCharacteristics(res, opts...)
	if err != nil {
		return err
	}

	log.GetLogger().Info("collected characteristics",
		log.RunKey, res.RunID,
		log.RowsKey, table.NumRows(),
		log.ColumnsKey, len(table.ColumnNames()),
	)

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrapf(err, "creating output %s", cfg.Output)
		}
		defer f.Close()
		out = f
	}
	return table.WriteCSV(out)
}
