package tune

// CollectOption configures CollectCharacteristics.
type CollectOption func(*collectConfig)

type collectConfig struct {
	addMetrics bool
	wide       bool
}

// WithMetrics joins the run's resample-averaged performance metrics onto the
// characteristics, matched on combination id.
func WithMetrics() CollectOption {
	return func(c *collectConfig) { c.addMetrics = true }
}

// Wide pivots the output into one row per combination with one column per
// characteristic (and metric, when joined).
func Wide() CollectOption {
	return func(c *collectConfig) { c.wide = true }
}

// CollectCharacteristics is the public entry point composing the collector,
// the metric joiner, and the reshaper. With no options it returns the
// long-form *CharacteristicsTable; WithMetrics yields a *JoinedTable and Wide
// a *WideTable. Callers always get a table back — possibly with fewer rows or
// NaN cells — unless the result itself is malformed.
func CollectCharacteristics(res *Result, opts ...CollectOption) (Table, error) {
	var cfg collectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	long, err := Collect(res)
	if err != nil {
		return nil, err
	}
	if !cfg.addMetrics && !cfg.wide {
		return long, nil
	}

	joined := long.JoinMetrics(res.Metrics, cfg.addMetrics)
	if !cfg.wide {
		return joined, nil
	}
	return PivotWide(joined), nil
}
