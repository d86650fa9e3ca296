// Package tunex extracts structural characteristics from fitted models during
// hyperparameter tuning and aggregates them into tidy tables for
// complexity-versus-error analysis.
//
// A tuning engine fits one model per (hyperparameter combination, resample)
// pair. tunex hooks into that loop: after each fit it records a small set of
// named scalar characteristics (for example the number of active predictors
// retained by a penalized model), and once tuning is complete it collects
// every record into a long-form table, optionally joins resample-averaged
// performance metrics, and optionally pivots the result into one row per
// combination.
//
// # Quick Start
//
//	registry := tune.DefaultRegistry()
//	ctrl := tune.Control{Extract: registry.Hook()}
//
//	// ... the tuning engine calls ctrl.Extract once per fit and attaches
//	// the returned extraction to the run's result ...
//
//	table, err := tune.CollectCharacteristics(result, tune.WithMetrics(), tune.Wide())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table.WriteCSV(os.Stdout)
//
// # Packages
//
//   - tune: extraction hook, collector, metric joiner, and wide-form reshaper
//   - linear: penalized linear model family (active-coefficient counting)
//   - tree: tree-ensemble model family (leaf and depth counting)
//   - metrics: regression metrics (MSE, RMSE, MAE, R²) on gonum vectors
//   - core/model: capability interfaces implemented by model families
//   - core/parallel: CPU-parallel helper for engines that fit concurrently
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging
//
// Model training itself is out of scope: tunex consumes fitted-model values
// produced elsewhere and never mutates them.
package tunex
