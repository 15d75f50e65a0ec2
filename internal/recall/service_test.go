package recall_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/recalldash/internal/platform/apperr"
	"github.com/taibuivan/recalldash/internal/recall"
	"github.com/taibuivan/recalldash/pkg/pointer"
)

// fakeRepository records the arguments of the last call to each operation so
// tests can assert on the normalization the service applies.
type fakeRepository struct {
	lastFilter  recall.Filter
	lastLimit   int
	lastTopN    int
	lastMinYear int
	lastMaxYear int
	lastScope   string

	makers []string
	bounds recall.YearRange
}

func (f *fakeRepository) ListRecalls(_ context.Context, filter recall.Filter, limit int) ([]*recall.RecallView, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeRepository) ListMakers(_ context.Context, scope string) ([]string, error) {
	f.lastScope = scope
	return f.makers, nil
}

func (f *fakeRepository) YearBounds(_ context.Context) (recall.YearRange, error) {
	return f.bounds, nil
}

func (f *fakeRepository) KPI(_ context.Context, filter recall.Filter) (recall.KPI, error) {
	f.lastFilter = filter
	return recall.KPI{}, nil
}

func (f *fakeRepository) MakerRanking(_ context.Context, filter recall.Filter, topN int) ([]recall.MakerCount, error) {
	f.lastFilter = filter
	f.lastTopN = topN
	return nil, nil
}

func (f *fakeRepository) ModelRanking(_ context.Context, filter recall.Filter, topN int) ([]recall.ModelCount, error) {
	f.lastFilter = filter
	f.lastTopN = topN
	return nil, nil
}

func (f *fakeRepository) YearTrend(_ context.Context, filter recall.Filter, minYear, maxYear int) ([]recall.YearCount, error) {
	f.lastFilter = filter
	f.lastMinYear = minYear
	f.lastMaxYear = maxYear
	return nil, nil
}

func newTestService(repo *fakeRepository) *recall.Service {
	return recall.NewService(repo, nil, slog.Default())
}

/*
TestService_ListRecalls_LimitClamping verifies the default and maximum limit
caps on the list operation.
*/
func TestService_ListRecalls_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"zero_falls_back_to_default", 0, 500},
		{"negative_falls_back_to_default", -5, 500},
		{"within_range_passes_through", 250, 250},
		{"above_max_is_clamped", 5000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			_, err := service.ListRecalls(context.Background(), recall.Filter{}, tt.requested)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, repo.lastLimit)
		})
	}
}

/*
TestService_ListRecalls_SearchTooLong verifies that an oversized search token
is rejected with a VALIDATION_ERROR instead of reaching storage.
*/
func TestService_ListRecalls_SearchTooLong(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	_, err := service.ListRecalls(context.Background(), recall.Filter{Search: string(long)}, 0)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "q", ae.Details[0].Field)

	// Storage was never called.
	assert.Zero(t, repo.lastLimit)
}

/*
TestService_Stats_SearchStripped verifies that KPI, rankings, and the trend
all drop the search token while keeping the structural filters.
*/
func TestService_Stats_SearchStripped(t *testing.T) {
	filter := recall.Filter{
		Scope:  recall.ScopeDomestic,
		Maker:  "Acme Motors",
		Year:   pointer.To(2022),
		Search: "X1",
	}

	t.Run("kpi", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		_, err := service.KPI(context.Background(), filter)

		require.NoError(t, err)
		assert.Empty(t, repo.lastFilter.Search)
		assert.Equal(t, "Acme Motors", repo.lastFilter.Maker)
		assert.Equal(t, pointer.To(2022), repo.lastFilter.Year)
	})

	t.Run("maker_ranking", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		_, err := service.MakerRanking(context.Background(), filter, 10)

		require.NoError(t, err)
		assert.Empty(t, repo.lastFilter.Search)
		assert.Equal(t, recall.ScopeDomestic, repo.lastFilter.Scope)
	})

	t.Run("model_ranking", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		_, err := service.ModelRanking(context.Background(), filter, 10)

		require.NoError(t, err)
		assert.Empty(t, repo.lastFilter.Search)
	})

	t.Run("year_trend_strips_search_and_year", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		_, err := service.YearTrend(context.Background(), filter, 2019, 2024)

		require.NoError(t, err)
		assert.Empty(t, repo.lastFilter.Search)
		assert.Nil(t, repo.lastFilter.Year)
		assert.Equal(t, "Acme Motors", repo.lastFilter.Maker)
		assert.Equal(t, 2019, repo.lastMinYear)
		assert.Equal(t, 2024, repo.lastMaxYear)
	})
}

/*
TestService_Rankings_TopNClamping verifies the default and maximum top-N caps.
*/
func TestService_Rankings_TopNClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"zero_falls_back_to_default", 0, 20},
		{"negative_falls_back_to_default", -1, 20},
		{"within_range_passes_through", 50, 50},
		{"above_max_is_clamped", 999, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			_, err := service.MakerRanking(context.Background(), recall.Filter{}, tt.requested)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, repo.lastTopN)
		})
	}
}

/*
TestService_YearTrend_InvertedRange verifies that an inverted year range is
rejected with a VALIDATION_ERROR rather than served as an empty series.
*/
func TestService_YearTrend_InvertedRange(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	_, err := service.YearTrend(context.Background(), recall.Filter{}, 2024, 2019)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "to", ae.Details[0].Field)

	// A single year (from == to) is valid.
	_, err = service.YearTrend(context.Background(), recall.Filter{}, 2022, 2022)
	assert.NoError(t, err)
}

/*
TestService_ListMakers_ScopeNormalization verifies that an absent scope is
normalized to the "all" sentinel before reaching the option source.
*/
func TestService_ListMakers_ScopeNormalization(t *testing.T) {
	repo := &fakeRepository{makers: []string{"Acme Motors", "Borealis"}}
	service := newTestService(repo)

	makers, err := service.ListMakers(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, recall.FilterAll, repo.lastScope)
	assert.Equal(t, []string{"Acme Motors", "Borealis"}, makers)
}

/*
TestService_NilOptions_FallsBackToRepository verifies that wiring without a
dedicated option source routes the dropdown queries to the repository.
*/
func TestService_NilOptions_FallsBackToRepository(t *testing.T) {
	repo := &fakeRepository{bounds: recall.YearRange{MinYear: 2011, MaxYear: 2026}}
	service := recall.NewService(repo, nil, slog.Default())

	bounds, err := service.YearBounds(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2011, bounds.MinYear)
	assert.Equal(t, 2026, bounds.MaxYear)
	assert.Equal(t, 16, bounds.Years())
}
