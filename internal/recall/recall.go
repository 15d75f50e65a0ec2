// Package recall implements the recall browsing and statistics domain:
// filter-to-SQL translation and the seven read-only query operations the
// dashboard is built on.
package recall

import "time"

// Sentinel filter values. The UI sends "all" to mean "do not filter".
const (
	// FilterAll disables the scope or maker filter.
	FilterAll = "all"

	// ScopeDomestic and ScopeOverseas are the two region classifications
	// carried by core.manufacturer.region_at.
	ScopeDomestic = "domestic"
	ScopeOverseas = "overseas"
)

// RecallView is the projection backing the recall list screen (cards).
//
// Text fields and TargetUnits are normalized in SQL (empty string / 0);
// a missing value never reaches the client as null.
type RecallView struct {
	Scope       string    `json:"scope"`
	Maker       string    `json:"maker"`
	CarName     string    `json:"car_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TargetUnits int64     `json:"target_units"`
	DefectText  string    `json:"defect_text"`
	FixText     string    `json:"fix_text"`
	ContactText string    `json:"contact_text"`
}

// KPI is the (recall count, total affected units) summary pair for a filter set.
type KPI struct {
	RecallCount int64 `json:"recall_cnt"`
	TotalUnits  int64 `json:"total_units"`
}

// MakerCount is one row of the manufacturer ranking.
type MakerCount struct {
	Maker       string `json:"maker"`
	RecallCount int64  `json:"recall_cnt"`
}

// ModelCount is one row of the model ranking.
type ModelCount struct {
	CarName     string `json:"car_name"`
	RecallCount int64  `json:"recall_cnt"`
}

// YearCount is one point of the per-year trend series.
type YearCount struct {
	Year        int   `json:"year"`
	RecallCount int64 `json:"recall_cnt"`
}

// YearRange is the inclusive [min, max] year span offered by the year dropdown.
type YearRange struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

// Years returns the number of years covered by the range, inclusive.
func (r YearRange) Years() int {
	return r.MaxYear - r.MinYear + 1
}
