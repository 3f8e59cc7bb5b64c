package services

import (
	"strconv"

	"cutting_report/internal/models"
)

// pctBand is the tolerance band for the can-cut exception checks: ratios up
// to 101% still count as "at target". The band replaced an earlier strict
// 100% cutoff after rounding in the marker reports kept flagging healthy
// orders.
const pctBand = 1.01

func isCutShort(r models.OrderRow) bool { return r.CutPct < 1.0 }

func isCanCutShort(r models.OrderRow) bool {
	return r.CanCutPct < pctBand && r.CutPct < pctBand
}

func isCutBehind(r models.OrderRow) bool {
	return r.CutPct < r.CanCutPct && r.CutPct < pctBand
}

var exceptionTitles = map[models.ExceptionKind]string{
	models.ExceptionCutBelowTarget:    "CUT% < 100%",
	models.ExceptionCanCutBelowTarget: "CAN CUT% < 100%",
	models.ExceptionCutBehindCanCut:   "CUT% < CAN CUT%",
}

func exceptionMatch(kind models.ExceptionKind) func(models.OrderRow) bool {
	switch kind {
	case models.ExceptionCutBelowTarget:
		return isCutShort
	case models.ExceptionCanCutBelowTarget:
		return isCanCutShort
	case models.ExceptionCutBehindCanCut:
		return isCutBehind
	default:
		return nil
	}
}

// ExceptionRows returns the subset of rows in one exception class. The
// classes overlap; a row can land in all three.
func ExceptionRows(rows []models.OrderRow, kind models.ExceptionKind) []models.OrderRow {
	match := exceptionMatch(kind)
	if match == nil {
		return nil
	}
	out := make([]models.OrderRow, 0)
	for _, r := range rows {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// ClassifyExceptions runs all three exception classes over the working
// subset.
func ClassifyExceptions(rows []models.OrderRow) []models.ExceptionReport {
	kinds := []models.ExceptionKind{
		models.ExceptionCutBelowTarget,
		models.ExceptionCanCutBelowTarget,
		models.ExceptionCutBehindCanCut,
	}
	reports := make([]models.ExceptionReport, 0, len(kinds))
	for _, kind := range kinds {
		matched := ExceptionRows(rows, kind)
		reports = append(reports, models.ExceptionReport{
			Kind:  kind,
			Title: exceptionTitles[kind],
			Count: len(matched),
			Rows:  matched,
		})
	}
	return reports
}

// FormatExceptionCount is the card display rule: zero shows as a placeholder
// instead of "0".
func FormatExceptionCount(count int) string {
	if count <= 0 {
		return "--"
	}
	return strconv.Itoa(count)
}
