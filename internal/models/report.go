package models

// FilterSelection holds the user-chosen values per dimension. An empty slice
// means no filter on that dimension.
type FilterSelection struct {
	Months   []string `json:"months"`
	Buyers   []string `json:"buyers"`
	Statuses []string `json:"statuses"`
	Styles   []string `json:"styles"`
	Weeks    []string `json:"weeks"`
}

// FilterOptions are the selectable values per dimension, derived from the row
// set that is current at each filter stage.
type FilterOptions struct {
	Months   []string `json:"months"`
	Buyers   []string `json:"buyers"`
	Statuses []string `json:"statuses"`
	Styles   []string `json:"styles"`
}

type HealthState string

const (
	HealthGood    HealthState = "good"
	HealthCaution HealthState = "caution"
	HealthBad     HealthState = "bad"
)

// KPIRecord is the fixed-shape aggregate computed over a working subset.
// An empty subset yields the zero value.
type KPIRecord struct {
	SumCut    float64 `json:"sum_cut"`
	SumCanCut float64 `json:"sum_can_cut"`
	SumOrd    float64 `json:"sum_ord"`
	SumReq    float64 `json:"sum_req"`
	SumRcvd   float64 `json:"sum_rcvd"`
	SumUsed   float64 `json:"sum_used"`
	SumStock  float64 `json:"sum_stock"`

	// Consumption averages are order-quantity weighted; the percent averages
	// are plain row means. The split is a reporting convention, keep it.
	AvgStd      float64 `json:"avg_std"`
	AvgCAD      float64 `json:"avg_cad"`
	AvgAchieved float64 `json:"avg_achieved"`
	AvgCanCutP  float64 `json:"avg_can_cut_p"` // percent, 100 == 100%
	AvgCutP     float64 `json:"avg_cut_p"`

	PerfCut  float64 `json:"perf_cut"`
	PerfRcvd float64 `json:"perf_rcvd"`
	PerfCons float64 `json:"perf_cons"` // positive = excess usage vs standard
}

// KPIHealth carries the card colour classification for each KPI.
type KPIHealth struct {
	PerfCut   HealthState `json:"perf_cut"`
	CanCutQty HealthState `json:"can_cut_qty"`
	CutQty    HealthState `json:"cut_qty"`
	FabRcvd   HealthState `json:"fab_rcvd"`
	Stock     HealthState `json:"stock"`
	CADCons   HealthState `json:"cad_cons"`
	Achieved  HealthState `json:"achieved"`
	PerfCons  HealthState `json:"perf_cons"`
}

type ExceptionKind string

const (
	ExceptionCutBelowTarget    ExceptionKind = "ex1" // CUT % < 100%
	ExceptionCanCutBelowTarget ExceptionKind = "ex2" // CAN CUT % and CUT % under the 101% band
	ExceptionCutBehindCanCut   ExceptionKind = "ex3" // CUT % < CAN CUT %, within the band
)

// ExceptionReport is one exception class over a working subset.
type ExceptionReport struct {
	Kind  ExceptionKind `json:"kind"`
	Title string        `json:"title"`
	Count int           `json:"count"`
	Rows  []OrderRow    `json:"rows,omitempty"`
}

// ExceptionCard is the presentation form of an exception count: a zero count
// displays as "--", the underlying count stays a true integer.
type ExceptionCard struct {
	Kind    ExceptionKind `json:"kind"`
	Title   string        `json:"title"`
	Count   int           `json:"count"`
	Display string        `json:"display"`
}

// BuyerPerformance is one buyer's percent averages over the working subset,
// feeding the buyer comparison view.
type BuyerPerformance struct {
	Buyer      string  `json:"buyer"`
	AvgCanCutP float64 `json:"avg_can_cut_p"`
	AvgCutP    float64 `json:"avg_cut_p"`
}

// DashboardReport is everything the single-unit view consumes for one unit
// and one filter selection.
type DashboardReport struct {
	Unit       string             `json:"unit"`
	RowCount   int                `json:"row_count"`
	Selection  FilterSelection    `json:"selection"`
	Options    FilterOptions      `json:"options"`
	KPIs       KPIRecord          `json:"kpis"`
	Health     KPIHealth          `json:"health"`
	Exceptions []ExceptionCard    `json:"exceptions"`
	Buyers     []BuyerPerformance `json:"buyers"`
}

// SummaryOptions are the rollup filter options, computed as unions across all
// units and narrowed by the dimensions already applied.
type SummaryOptions struct {
	Months   []string `json:"months"`
	Weeks    []string `json:"weeks"`
	Statuses []string `json:"statuses"`
}

// UnitSummaryRow is the reduced KPI set for one unit in the rollup view.
type UnitSummaryRow struct {
	Unit       string  `json:"unit"`
	OrdQty     float64 `json:"ord_qty"`
	StdCons    float64 `json:"std_cons"`
	CADCons    float64 `json:"cad_cons"`
	AvgCanCutP float64 `json:"avg_can_cut_p"`
	AvgCutP    float64 `json:"avg_cut_p"`
	Leftover   float64 `json:"leftover"`
}

type SummaryReport struct {
	Selection FilterSelection  `json:"selection"`
	Options   SummaryOptions   `json:"options"`
	Rows      []UnitSummaryRow `json:"rows"`
}
