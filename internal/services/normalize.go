package services

import (
	"strconv"
	"strings"
	"time"

	"cutting_report/internal/models"
)

// Workbook column headers. Numeric columns coerce bad cells to 0, the date
// column coerces bad cells to nil; a row is never dropped for a bad cell.
const (
	colBuyer     = "BUYER"
	colStyleNo   = "STYLE NO"
	colColour    = "COLOUR"
	colStatus    = "STATUS"
	colEndDate   = "END DATE"
	colOrdQty    = "ORD QTY"
	colCanCutQty = "CAN CUT QTY"
	colCutQty    = "CUT QTY"
	colFabReq    = "FAB Req"
	colFabRcvd   = "FAB RCVD"
	colUsed      = "FABRIC USED"
	colStock     = "FABRIC LEFTOVER STOCK"
	colStdCons   = "STD Cons"
	colCADCons   = "CAD Cons"
	colAchieved  = "ACHIEVED CONS"
	colCanCutPct = "CAN CUT %"
	colCutPct    = "CUT %"
	colRemarks   = "REMARKS"
)

// dayFirstLayouts covers the date spellings seen across unit workbooks.
var dayFirstLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"02-01-06",
	"02/01/06",
	"2-1-2006",
	"2/1/2006",
	"02-Jan-2006",
	"02-Jan-06",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// excelEpoch is day zero of the 1900 date system (with the Lotus leap-year
// quirk folded in, hence Dec 30 not Dec 31).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeRows converts a raw sheet (header row first) into typed order
// rows. Unknown columns are ignored, missing columns leave zero values.
func NormalizeRows(sheet [][]string) []models.OrderRow {
	if len(sheet) < 2 {
		return nil
	}

	idx := make(map[string]int, len(sheet[0]))
	for i, h := range sheet[0] {
		idx[strings.TrimSpace(h)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]models.OrderRow, 0, len(sheet)-1)
	for _, raw := range sheet[1:] {
		endDate := parseDayFirstDate(cell(raw, colEndDate))
		rows = append(rows, models.OrderRow{
			Buyer:         cell(raw, colBuyer),
			StyleNo:       cell(raw, colStyleNo),
			Colour:        cell(raw, colColour),
			Status:        cell(raw, colStatus),
			EndDate:       endDate,
			Month:         models.MonthLabel(endDate),
			Week:          models.WeekLabel(endDate),
			OrdQty:        parseNumber(cell(raw, colOrdQty)),
			CanCutQty:     parseNumber(cell(raw, colCanCutQty)),
			CutQty:        parseNumber(cell(raw, colCutQty)),
			FabReq:        parseNumber(cell(raw, colFabReq)),
			FabRcvd:       parseNumber(cell(raw, colFabRcvd)),
			FabricUsed:    parseNumber(cell(raw, colUsed)),
			LeftoverStock: parseNumber(cell(raw, colStock)),
			StdCons:       parseNumber(cell(raw, colStdCons)),
			CADCons:       parseNumber(cell(raw, colCADCons)),
			AchievedCons:  parseNumber(cell(raw, colAchieved)),
			CanCutPct:     parseNumber(cell(raw, colCanCutPct)),
			CutPct:        parseNumber(cell(raw, colCutPct)),
			Remarks:       cell(raw, colRemarks),
		})
	}
	return rows
}

// parseNumber coerces a cell to float64; anything non-numeric becomes 0.
// Thousand separators are tolerated, negatives pass through unchanged.
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDayFirstDate parses a cell as a calendar date, day before month.
// Raw workbook cells may hold an excel serial instead of a date string.
// Unparseable values yield nil.
func parseDayFirstDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		// Serials below 61 predate the 1900-03-01 quirk cutoff and never
		// occur in production data.
		if serial < 61 {
			return nil
		}
		t := excelEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &t
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}
