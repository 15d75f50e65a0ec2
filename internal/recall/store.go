package recall

import "context"

// Repository is the storage boundary for the seven read-only query operations.
//
// Every implementation must honor the error contract: any storage failure is
// returned as a single DATA_ACCESS_FAILED application error carrying the
// operation name — raw driver errors never cross this boundary.
type Repository interface {
	ListRecalls(context context.Context, filter Filter, limit int) ([]*RecallView, error)
	ListMakers(context context.Context, scope string) ([]string, error)
	YearBounds(context context.Context) (YearRange, error)
	KPI(context context.Context, filter Filter) (KPI, error)
	MakerRanking(context context.Context, filter Filter, topN int) ([]MakerCount, error)
	YearTrend(context context.Context, filter Filter, minYear, maxYear int) ([]YearCount, error)
	ModelRanking(context context.Context, filter Filter, topN int) ([]ModelCount, error)
}

// OptionSource is the subset of [Repository] that feeds the filter dropdowns.
// It is the only part of the read path worth caching: hit on every page load,
// answers change only when ingestion runs.
type OptionSource interface {
	ListMakers(context context.Context, scope string) ([]string, error)
	YearBounds(context context.Context) (YearRange, error)
}
