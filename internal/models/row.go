package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderRow is one cutting order / style-colour line from a unit workbook.
// Percent columns are stored as fractions: 1.0 means 100%.
type OrderRow struct {
	Buyer   string     `json:"buyer"`
	StyleNo string     `json:"style_no"`
	Colour  string     `json:"colour"`
	Status  string     `json:"status"`
	EndDate *time.Time `json:"end_date"`
	Month   string     `json:"month"` // e.g. "JAN-26", "N/A" when end date missing
	Week    string     `json:"week"`  // e.g. "WK05", "N/A" when end date missing

	OrdQty        float64 `json:"ord_qty"`
	CanCutQty     float64 `json:"can_cut_qty"`
	CutQty        float64 `json:"cut_qty"`
	FabReq        float64 `json:"fab_req"`
	FabRcvd       float64 `json:"fab_rcvd"`
	FabricUsed    float64 `json:"fabric_used"`
	LeftoverStock float64 `json:"leftover_stock"`
	StdCons       float64 `json:"std_cons"`
	CADCons       float64 `json:"cad_cons"`
	AchievedCons  float64 `json:"achieved_cons"`
	CanCutPct     float64 `json:"can_cut_pct"`
	CutPct        float64 `json:"cut_pct"`

	Remarks string `json:"remarks"`
}

const NoDateLabel = "N/A"

// MonthLabel formats a date as the uppercase month-year bucket, e.g. "JAN-26".
func MonthLabel(d *time.Time) string {
	if d == nil {
		return NoDateLabel
	}
	return strings.ToUpper(d.Format("Jan-06"))
}

// WeekLabel formats a date as a zero-padded ISO week label, e.g. "WK05".
func WeekLabel(d *time.Time) string {
	if d == nil {
		return NoDateLabel
	}
	_, wk := d.ISOWeek()
	return fmt.Sprintf("WK%02d", wk)
}
