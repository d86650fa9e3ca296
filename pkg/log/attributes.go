package log

// Fit identification context. Every extraction-related log record should
// carry the combination and resample producing it.
const (
	// CombinationKey identifies the hyperparameter combination of a fit.
	CombinationKey = "tune.combination_id"

	// ResampleKey identifies the resample/fold of a fit.
	ResampleKey = "tune.resample_id"

	// RunKey identifies the tuning run.
	RunKey = "tune.run_id"

	// FamilyKey identifies the model family of a fitted model.
	FamilyKey = "model.family"

	// OperationKey specifies the operation being performed.
	// Standard values: "extract", "collect", "join", "pivot"
	OperationKey = "tune.operation"
)

// Table and extraction shape.
const (
	// CharacteristicsKey is the number of characteristics extracted from one fit.
	CharacteristicsKey = "extract.count"

	// RowsKey is the number of rows in a produced table.
	RowsKey = "table.rows"

	// ColumnsKey is the number of columns in a produced table.
	ColumnsKey = "table.columns"

	// FitsKey is the number of fit entries walked by the collector.
	FitsKey = "tune.fits"

	// SkippedKey is the number of fits skipped for lack of metadata or failure.
	SkippedKey = "tune.skipped"

	// MetricsKey is the number of distinct metric names joined.
	MetricsKey = "join.metrics"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
