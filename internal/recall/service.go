package recall

import (
	"context"
	"log/slog"

	"github.com/taibuivan/recalldash/internal/platform/constants"
	"github.com/taibuivan/recalldash/internal/platform/validate"
)

// Service fronts the [Repository] with input normalization: default and
// maximum caps, search stripping for the statistics operations, and the
// single validation rule the contract rejects (inverted trend range).
//
// Every operation is strictly read-only.
type Service struct {
	repo    Repository
	options OptionSource
	logger  *slog.Logger
}

// NewService wires the service. options is the (usually cached) source for
// the dropdown queries; passing nil falls back to the repository itself.
func NewService(repo Repository, options OptionSource, logger *slog.Logger) *Service {
	if options == nil {
		options = repo
	}
	return &Service{
		repo:    repo,
		options: options,
		logger:  logger,
	}
}

// ListRecalls returns the filtered recall list, newest production period first.
//
// A non-positive limit falls back to [constants.DefaultRecallLimit]; limits
// above [constants.MaxRecallLimit] are clamped.
func (service *Service) ListRecalls(context context.Context, filter Filter, limit int) ([]*RecallView, error) {
	validator := &validate.Validator{}
	validator.MaxLen("q", filter.Search, constants.MaxSearchLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constants.DefaultRecallLimit
	}
	if limit > constants.MaxRecallLimit {
		limit = constants.MaxRecallLimit
	}

	return service.repo.ListRecalls(context, filter, limit)
}

// ListMakers returns the maker dropdown options for a scope.
func (service *Service) ListMakers(context context.Context, scope string) ([]string, error) {
	if scope == "" {
		scope = FilterAll
	}
	return service.options.ListMakers(context, scope)
}

// YearBounds returns the year dropdown range.
func (service *Service) YearBounds(context context.Context) (YearRange, error) {
	return service.options.YearBounds(context)
}

// KPI returns the (count, units) summary for the structural filters.
// The search token is stripped: search scopes the list view, never the stats.
func (service *Service) KPI(context context.Context, filter Filter) (KPI, error) {
	return service.repo.KPI(context, filter.WithoutSearch())
}

// MakerRanking returns the top-N manufacturers by recall count.
func (service *Service) MakerRanking(context context.Context, filter Filter, topN int) ([]MakerCount, error) {
	return service.repo.MakerRanking(context, filter.WithoutSearch(), clampTopN(topN))
}

// ModelRanking returns the top-N models by recall count.
func (service *Service) ModelRanking(context context.Context, filter Filter, topN int) ([]ModelCount, error) {
	return service.repo.ModelRanking(context, filter.WithoutSearch(), clampTopN(topN))
}

// YearTrend returns one count per year over the inclusive [minYear, maxYear]
// range, zero-filled. An inverted range is rejected rather than rendered as
// an empty chart, so a swapped slider surfaces in the UI.
func (service *Service) YearTrend(context context.Context, filter Filter, minYear, maxYear int) ([]YearCount, error) {
	validator := &validate.Validator{}
	validator.Custom("to", maxYear < minYear, "Must not precede 'from'")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The per-year overlap lives in the trend query itself; a leftover
	// single-year filter would contradict the requested range.
	structural := filter.WithoutSearch().WithoutYear()

	trend, err := service.repo.YearTrend(context, structural, minYear, maxYear)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("year_trend_served",
		slog.Int("from", minYear),
		slog.Int("to", maxYear),
		slog.Int("points", len(trend)),
	)

	return trend, nil
}

// clampTopN applies the default and maximum ranking cutoffs.
func clampTopN(topN int) int {
	if topN <= 0 {
		return constants.DefaultRankingTopN
	}
	if topN > constants.MaxRankingTopN {
		return constants.MaxRankingTopN
	}
	return topN
}
