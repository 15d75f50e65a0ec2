package recall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/recalldash/pkg/pointer"
)

/*
TestListRecallsSQL verifies the list projection: newest production period
first, limit bound after the filter parameters, nulls normalized in SQL.
*/
func TestListRecallsSQL(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		query, args := listRecallsSQL(Filter{}, 500)

		assert.Contains(t, query, "FROM core.recall rc")
		assert.Contains(t, query, "JOIN core.model md ON rc.model_id = md.model_id")
		assert.Contains(t, query, "JOIN core.manufacturer mf ON md.maker_id = mf.maker_id")
		assert.Contains(t, query, "ORDER BY md.end_date DESC")
		assert.Contains(t, query, "LIMIT $1")
		assert.NotContains(t, query, "WHERE")
		assert.Equal(t, []any{500}, args)
	})

	t.Run("null_normalization", func(t *testing.T) {
		query, _ := listRecallsSQL(Filter{}, 500)

		assert.Contains(t, query, "COALESCE(rc.recall_quantity, 0)")
		assert.Contains(t, query, "COALESCE(rc.defect_desc, '')")
		assert.Contains(t, query, "COALESCE(rc.fix_method, '')")
		assert.Contains(t, query, "COALESCE(rc.recall_center, '')")
	})

	t.Run("limit_numbered_after_filter_args", func(t *testing.T) {
		filter := Filter{Scope: ScopeDomestic, Maker: "Acme Motors"}

		query, args := listRecallsSQL(filter, 100)

		assert.Contains(t, query, "WHERE mf.region_at = $1 AND mf.maker_name = $2")
		assert.Contains(t, query, "LIMIT $3")
		require.Len(t, args, 3)
		assert.Equal(t, 100, args[2])
	})
}

/*
TestKPISQL verifies the summary aggregation shape: a COUNT/SUM pair over the
same join and filter set as the list view.
*/
func TestKPISQL(t *testing.T) {
	query, args := kpiSQL(Filter{Scope: ScopeOverseas})

	assert.Contains(t, query, "COUNT(*) AS recall_cnt")
	assert.Contains(t, query, "COALESCE(SUM(COALESCE(rc.recall_quantity, 0)), 0) AS total_units")
	assert.Contains(t, query, "WHERE mf.region_at = $1")
	assert.Equal(t, []any{"overseas"}, args)
}

/*
TestRankingSQL verifies both ranking shapes: grouped counts ordered by count
descending, with the top-N cutoff bound last.
*/
func TestRankingSQL(t *testing.T) {
	t.Run("maker", func(t *testing.T) {
		query, args := makerRankingSQL(Filter{Scope: ScopeDomestic}, 20)

		assert.Contains(t, query, "GROUP BY mf.maker_name")
		assert.Contains(t, query, "ORDER BY recall_cnt DESC")
		assert.Contains(t, query, "LIMIT $2")
		assert.Equal(t, []any{"domestic", 20}, args)
	})

	t.Run("model", func(t *testing.T) {
		query, args := modelRankingSQL(Filter{}, 20)

		assert.Contains(t, query, "GROUP BY md.model_name")
		assert.Contains(t, query, "ORDER BY recall_cnt DESC")
		assert.Contains(t, query, "LIMIT $1")
		assert.Equal(t, []any{20}, args)
	})
}

/*
TestYearTrendSQL verifies the single-query trend shape: a generated year
series left-joined against the filtered join so zero-count years survive,
with filter placeholders numbered after the two series bounds.
*/
func TestYearTrendSQL(t *testing.T) {
	t.Run("series_and_overlap", func(t *testing.T) {
		query, args := yearTrendSQL(Filter{}, 2019, 2024)

		assert.Contains(t, query, "FROM generate_series($1::int, $2::int) AS years(year)")
		assert.Contains(t, query, "LEFT JOIN (")
		assert.Contains(t, query, "md.start_date <= make_date(years.year, 12, 31)")
		assert.Contains(t, query, "md.end_date >= make_date(years.year, 1, 1)")
		assert.Contains(t, query, "GROUP BY years.year")
		assert.Contains(t, query, "ORDER BY years.year")
		assert.Equal(t, []any{2019, 2024}, args)
	})

	t.Run("structural_filters_in_join_condition", func(t *testing.T) {
		filter := Filter{Scope: ScopeDomestic, Maker: "Acme Motors"}

		query, args := yearTrendSQL(filter, 2019, 2024)

		// Predicates belong to the ON condition; a trailing WHERE would
		// collapse the LEFT JOIN and drop the zero-count years.
		assert.Contains(t, query, "mf.region_at = $3")
		assert.Contains(t, query, "mf.maker_name = $4")
		assert.NotContains(t, query, "WHERE")
		assert.Equal(t, []any{2019, 2024, "domestic", "Acme Motors"}, args)
	})

	t.Run("search_and_year_stripped", func(t *testing.T) {
		filter := Filter{Year: pointer.To(2022), Search: "X1"}

		query, args := yearTrendSQL(filter, 2019, 2024)

		assert.NotContains(t, query, "ILIKE")
		assert.Equal(t, []any{2019, 2024}, args)
	})
}
