package recall

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/recalldash/internal/platform/constants"
	"github.com/taibuivan/recalldash/internal/platform/database/schema"
	"github.com/taibuivan/recalldash/internal/platform/dberr"
)

// PostgresRepository implements [Repository] against the core schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// joinSQL is the three-way join every recall query is built on.
var joinSQL = fmt.Sprintf(`FROM %s %s
JOIN %s %s ON %s.%s = %s.%s
JOIN %s %s ON %s.%s = %s.%s`,
	schema.Recall.Table, aliasRecall,
	schema.Model.Table, aliasModel,
	aliasRecall, schema.Recall.ModelID, aliasModel, schema.Model.ModelID,
	schema.Manufacturer.Table, aliasMaker,
	aliasModel, schema.Model.MakerID, aliasMaker, schema.Manufacturer.MakerID,
)

// # List Recalls

// listRecallsSQL builds the card-list projection: newest production periods
// first, nulls normalized in SQL so the UI never sees a missing value.
func listRecallsSQL(filter Filter, limit int) (string, []any) {
	whereSQL, args := filter.BuildWhere()

	query := fmt.Sprintf(`SELECT
	COALESCE(%[1]s.%[2]s, '')  AS scope,
	COALESCE(%[1]s.%[3]s, '')  AS maker,
	COALESCE(%[4]s.%[5]s, '')  AS car_name,
	%[4]s.%[6]s                AS start_date,
	%[4]s.%[7]s                AS end_date,
	COALESCE(%[8]s.%[9]s, 0)   AS target_units,
	COALESCE(%[8]s.%[10]s, '') AS defect_text,
	COALESCE(%[8]s.%[11]s, '') AS fix_text,
	COALESCE(%[8]s.%[12]s, '') AS contact_text
%[13]s
%[14]s
ORDER BY %[4]s.%[7]s DESC
LIMIT $%[15]d`,
		aliasMaker, schema.Manufacturer.RegionAt, schema.Manufacturer.Name,
		aliasModel, schema.Model.Name, schema.Model.StartDate, schema.Model.EndDate,
		aliasRecall, schema.Recall.Quantity, schema.Recall.Defect, schema.Recall.Fix, schema.Recall.Center,
		joinSQL, whereSQL, len(args)+1,
	)

	args = append(args, limit)
	return query, args
}

func (repository *PostgresRepository) ListRecalls(context context.Context, filter Filter, limit int) ([]*RecallView, error) {
	query, args := listRecallsSQL(filter, limit)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_recalls")
	}
	defer rows.Close()

	var recalls []*RecallView
	for rows.Next() {
		view := &RecallView{}
		if err := rows.Scan(
			&view.Scope, &view.Maker, &view.CarName,
			&view.StartDate, &view.EndDate,
			&view.TargetUnits, &view.DefectText, &view.FixText, &view.ContactText,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_recall")
		}
		recalls = append(recalls, view)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_recalls")
	}

	return recalls, nil
}

// # Maker Options

func (repository *PostgresRepository) ListMakers(context context.Context, scope string) ([]string, error) {
	whereSQL := ""
	args := []any{}

	if scope != "" && scope != FilterAll {
		whereSQL = fmt.Sprintf("WHERE %s = $1", schema.Manufacturer.RegionAt)
		args = append(args, scope)
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s %s ORDER BY %s`,
		schema.Manufacturer.Name, schema.Manufacturer.Table, whereSQL, schema.Manufacturer.Name,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_makers")
	}
	defer rows.Close()

	var makers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "scan_maker")
		}
		// Blank names would render as empty dropdown entries.
		if name != "" {
			makers = append(makers, name)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_makers")
	}

	return makers, nil
}

// # Year Bounds

// YearBounds derives the year dropdown range from the models' production
// periods. With no complete period on record it falls back to a safe default
// so the UI can always render year options.
func (repository *PostgresRepository) YearBounds(context context.Context) (YearRange, error) {
	query := fmt.Sprintf(`SELECT
	MIN(EXTRACT(YEAR FROM %[1]s))::int AS min_year,
	MAX(EXTRACT(YEAR FROM %[2]s))::int AS max_year
FROM %[3]s
WHERE %[1]s IS NOT NULL AND %[2]s IS NOT NULL`,
		schema.Model.StartDate, schema.Model.EndDate, schema.Model.Table,
	)

	var minYear, maxYear *int
	if err := repository.db.QueryRow(context, query).Scan(&minYear, &maxYear); err != nil {
		return YearRange{}, dberr.Wrap(err, "year_bounds")
	}

	if minYear == nil || maxYear == nil {
		return YearRange{MinYear: constants.FallbackMinYear, MaxYear: time.Now().Year()}, nil
	}

	return YearRange{MinYear: *minYear, MaxYear: *maxYear}, nil
}

// # KPI

func kpiSQL(filter Filter) (string, []any) {
	whereSQL, args := filter.BuildWhere()

	query := fmt.Sprintf(`SELECT
	COUNT(*) AS recall_cnt,
	COALESCE(SUM(COALESCE(%s.%s, 0)), 0) AS total_units
%s
%s`,
		aliasRecall, schema.Recall.Quantity, joinSQL, whereSQL,
	)

	return query, args
}

func (repository *PostgresRepository) KPI(context context.Context, filter Filter) (KPI, error) {
	query, args := kpiSQL(filter)

	var result KPI
	if err := repository.db.QueryRow(context, query, args...).Scan(&result.RecallCount, &result.TotalUnits); err != nil {
		return KPI{}, dberr.Wrap(err, "kpi")
	}

	return result, nil
}

// # Rankings

func makerRankingSQL(filter Filter, topN int) (string, []any) {
	whereSQL, args := filter.BuildWhere()

	query := fmt.Sprintf(`SELECT
	%[1]s.%[2]s AS maker,
	COUNT(*)    AS recall_cnt
%[3]s
%[4]s
GROUP BY %[1]s.%[2]s
ORDER BY recall_cnt DESC
LIMIT $%[5]d`,
		aliasMaker, schema.Manufacturer.Name, joinSQL, whereSQL, len(args)+1,
	)

	args = append(args, topN)
	return query, args
}

func (repository *PostgresRepository) MakerRanking(context context.Context, filter Filter, topN int) ([]MakerCount, error) {
	query, args := makerRankingSQL(filter, topN)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "maker_ranking")
	}
	defer rows.Close()

	var ranking []MakerCount
	for rows.Next() {
		var entry MakerCount
		if err := rows.Scan(&entry.Maker, &entry.RecallCount); err != nil {
			return nil, dberr.Wrap(err, "scan_maker_ranking")
		}
		ranking = append(ranking, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "maker_ranking")
	}

	return ranking, nil
}

func modelRankingSQL(filter Filter, topN int) (string, []any) {
	whereSQL, args := filter.BuildWhere()

	query := fmt.Sprintf(`SELECT
	%[1]s.%[2]s AS car_name,
	COUNT(*)    AS recall_cnt
%[3]s
%[4]s
GROUP BY %[1]s.%[2]s
ORDER BY recall_cnt DESC
LIMIT $%[5]d`,
		aliasModel, schema.Model.Name, joinSQL, whereSQL, len(args)+1,
	)

	args = append(args, topN)
	return query, args
}

func (repository *PostgresRepository) ModelRanking(context context.Context, filter Filter, topN int) ([]ModelCount, error) {
	query, args := modelRankingSQL(filter, topN)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "model_ranking")
	}
	defer rows.Close()

	var ranking []ModelCount
	for rows.Next() {
		var entry ModelCount
		if err := rows.Scan(&entry.CarName, &entry.RecallCount); err != nil {
			return nil, dberr.Wrap(err, "scan_model_ranking")
		}
		ranking = append(ranking, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "model_ranking")
	}

	return ranking, nil
}

// # Year Trend

// yearTrendSQL builds the whole trend as one grouped aggregation: a year
// series left-joined against the filtered three-way join on the
// production-period overlap test. The series guarantees one zero-filled row
// per year in [minYear, maxYear] — no per-year round trips.
func yearTrendSQL(filter Filter, minYear, maxYear int) (string, []any) {
	// Scope/maker predicates move into the join condition; an outer WHERE
	// would silently turn the LEFT JOIN back into an inner one and drop
	// the zero-count years.
	structural := filter.WithoutSearch().WithoutYear()
	clauses, clauseArgs := structural.Clauses(3)

	onParts := append([]string{
		fmt.Sprintf("%s.%s <= make_date(years.year, 12, 31)", aliasModel, schema.Model.StartDate),
		fmt.Sprintf("%s.%s >= make_date(years.year, 1, 1)", aliasModel, schema.Model.EndDate),
	}, clauses...)

	query := fmt.Sprintf(`SELECT
	years.year,
	COUNT(%[1]s.%[2]s) AS recall_cnt
FROM generate_series($1::int, $2::int) AS years(year)
LEFT JOIN (
	%[3]s %[4]s
	JOIN %[5]s %[6]s ON %[4]s.%[7]s = %[6]s.%[8]s
	JOIN %[9]s %[10]s ON %[6]s.%[11]s = %[10]s.%[12]s
) ON %[13]s
GROUP BY years.year
ORDER BY years.year`,
		aliasRecall, schema.Recall.RecallID,
		schema.Recall.Table, aliasRecall,
		schema.Model.Table, aliasModel,
		schema.Recall.ModelID, schema.Model.ModelID,
		schema.Manufacturer.Table, aliasMaker,
		schema.Model.MakerID, schema.Manufacturer.MakerID,
		strings.Join(onParts, " AND "),
	)

	args := append([]any{minYear, maxYear}, clauseArgs...)
	return query, args
}

func (repository *PostgresRepository) YearTrend(context context.Context, filter Filter, minYear, maxYear int) ([]YearCount, error) {
	query, args := yearTrendSQL(filter, minYear, maxYear)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "year_trend")
	}
	defer rows.Close()

	var trend []YearCount
	for rows.Next() {
		var point YearCount
		if err := rows.Scan(&point.Year, &point.RecallCount); err != nil {
			return nil, dberr.Wrap(err, "scan_year_trend")
		}
		trend = append(trend, point)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "year_trend")
	}

	return trend, nil
}
