package recall

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/recalldash/internal/platform/database/schema"
)

// Table aliases shared by the filter builder and every query shape in the
// postgres store. The three-way join is always recall ⋈ model ⋈ manufacturer.
const (
	aliasRecall = "rc"
	aliasModel  = "md"
	aliasMaker  = "mf"
)

// Filter holds the user-supplied filter values for recall queries.
//
// Zero values are no-ops: an empty (or [FilterAll]) Scope/Maker, a nil Year,
// and a blank Search each contribute no predicate clause.
type Filter struct {
	// Scope filters by manufacturer region ("domestic"/"overseas").
	Scope string
	// Maker filters by exact manufacturer display name — the same column
	// the dropdown options are read from, so a selected option always matches.
	Maker string
	// Year attributes recalls to a calendar year via production-period
	// overlap, not equality: a model built 2020–2025 is visible under
	// every year from 2020 through 2025.
	Year *int
	// Search is a free-text token matched case-insensitively against
	// manufacturer and model names.
	Search string
}

// WithoutSearch returns a copy of the filter with the search token cleared.
//
// KPI, rankings, and the trend answer "how many, given these structural
// filters" — the search box is a list-browsing affordance and is excluded
// from statistics by design.
func (f Filter) WithoutSearch() Filter {
	f.Search = ""
	return f
}

// WithoutYear returns a copy of the filter with the year filter cleared.
func (f Filter) WithoutYear() Filter {
	f.Year = nil
	return f
}

// NormalizedSearch returns the search token trimmed and NFC-normalized.
//
// Korean input arrives in mixed Unicode forms depending on the client IME;
// normalizing here keeps LIKE matching consistent with the stored names.
func (f Filter) NormalizedSearch() string {
	return norm.NFC.String(strings.TrimSpace(f.Search))
}

// HasScope reports whether the scope filter is active (not the "all" sentinel).
func (f Filter) HasScope() bool {
	return f.Scope != "" && f.Scope != FilterAll
}

// HasMaker reports whether the maker filter is active (not the "all" sentinel).
func (f Filter) HasMaker() bool {
	return f.Maker != "" && f.Maker != FilterAll
}

// BuildWhere assembles the WHERE clause and its ordered bind parameters,
// numbering placeholders from $1.
//
// The returned SQL is either empty or a complete "WHERE ..." fragment.
// Callers appending their own parameters (LIMIT, series bounds) continue
// numbering at len(args)+1.
func (f Filter) BuildWhere() (string, []any) {
	clauses, args := f.Clauses(1)
	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// Clauses returns the independent predicate clauses and their bound
// arguments, numbering placeholders from firstArg.
//
// Clause order is fixed — scope, maker, year, search — and deterministic
// across calls with the same inputs. Filter values always travel as bind
// parameters; they are never interpolated into the SQL text.
func (f Filter) Clauses(firstArg int) ([]string, []any) {
	var clauses []string
	var args []any

	next := func() int { return firstArg + len(args) }

	// Scope: equality on the manufacturer's region classification.
	if f.HasScope() {
		clauses = append(clauses, fmt.Sprintf("%s.%s = $%d", aliasMaker, schema.Manufacturer.RegionAt, next()))
		args = append(args, f.Scope)
	}

	// Maker: equality on the manufacturer display name.
	if f.HasMaker() {
		clauses = append(clauses, fmt.Sprintf("%s.%s = $%d", aliasMaker, schema.Manufacturer.Name, next()))
		args = append(args, f.Maker)
	}

	// Year: production-period overlap with [Jan 1, Dec 31] of the year.
	if f.Year != nil {
		year := *f.Year
		yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

		clauses = append(clauses, fmt.Sprintf("%s.%s <= $%d AND %s.%s >= $%d",
			aliasModel, schema.Model.StartDate, next(),
			aliasModel, schema.Model.EndDate, next()+1,
		))
		args = append(args, yearEnd, yearStart)
	}

	// Search: case-insensitive substring against maker OR model name,
	// one bound token reused for both sides.
	if token := f.NormalizedSearch(); token != "" {
		placeholder := next()
		clauses = append(clauses, fmt.Sprintf("(%s.%s ILIKE $%d OR %s.%s ILIKE $%d)",
			aliasMaker, schema.Manufacturer.Name, placeholder,
			aliasModel, schema.Model.Name, placeholder,
		))
		args = append(args, "%"+token+"%")
	}

	return clauses, args
}
