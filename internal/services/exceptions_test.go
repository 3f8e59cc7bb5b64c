package services

import (
	"testing"

	"cutting_report/internal/models"
)

func reportByKind(t *testing.T, rows []models.OrderRow, kind models.ExceptionKind) models.ExceptionReport {
	t.Helper()
	for _, r := range ClassifyExceptions(rows) {
		if r.Kind == kind {
			return r
		}
	}
	t.Fatalf("No report for kind %s", kind)
	return models.ExceptionReport{}
}

func TestClassifyExceptions_CutBelowTargetIsStrict(t *testing.T) {
	rows := []models.OrderRow{
		{StyleNo: "A", CutPct: 0.95},
		{StyleNo: "B", CutPct: 1.0},
	}

	r := reportByKind(t, rows, models.ExceptionCutBelowTarget)
	if r.Count != 1 {
		t.Fatalf("Expected 1 ex1 row, got %d", r.Count)
	}
	if r.Rows[0].StyleNo != "A" {
		t.Errorf("CutPct 1.0 must not count as below target (strict <), got %+v", r.Rows)
	}
}

func TestClassifyExceptions_ToleranceBand(t *testing.T) {
	rows := []models.OrderRow{
		{StyleNo: "A", CanCutPct: 1.005, CutPct: 1.0},
		{StyleNo: "B", CanCutPct: 1.05, CutPct: 1.02},
	}

	ex2 := reportByKind(t, rows, models.ExceptionCanCutBelowTarget)
	ex3 := reportByKind(t, rows, models.ExceptionCutBehindCanCut)

	// Row A sits inside the 101% band on both ratios, and its cut lags its
	// can-cut, so it lands in both classes.
	if ex2.Count != 1 || ex2.Rows[0].StyleNo != "A" {
		t.Errorf("Expected only row A in ex2, got %+v", ex2.Rows)
	}
	if ex3.Count != 1 || ex3.Rows[0].StyleNo != "A" {
		t.Errorf("Expected only row A in ex3, got %+v", ex3.Rows)
	}
}

func TestClassifyExceptions_AboveBandExcluded(t *testing.T) {
	// Both ratios at or above 101%: outside every class even though the cut
	// ratio trails the can-cut ratio.
	rows := []models.OrderRow{
		{CanCutPct: 1.05, CutPct: 1.02},
	}

	for _, r := range ClassifyExceptions(rows) {
		if r.Count != 0 {
			t.Errorf("%s must be empty for a row above the band, got %d", r.Kind, r.Count)
		}
	}
}

// The can-cut exception originally used a bare CAN CUT % < 1.0 check. The
// band rule replaced it: rounding in the marker reports kept flagging
// healthy orders at 100.x%. This pins the replacement so the old rule does
// not creep back.
func TestClassifyExceptions_SupersedesStrictRule(t *testing.T) {
	row := models.OrderRow{CanCutPct: 1.005, CutPct: 0.99}

	r := reportByKind(t, []models.OrderRow{row}, models.ExceptionCanCutBelowTarget)
	if r.Count != 1 {
		t.Errorf("CanCutPct 1.005 is inside the band, the strict <1.0 rule no longer applies (got count %d)", r.Count)
	}

	// And the dual condition matters: a lagging cut alone is not enough when
	// the can-cut ratio clears the band.
	clear := models.OrderRow{CanCutPct: 1.02, CutPct: 0.99}
	r = reportByKind(t, []models.OrderRow{clear}, models.ExceptionCanCutBelowTarget)
	if r.Count != 0 {
		t.Errorf("CanCutPct above the band must exclude the row from ex2, got count %d", r.Count)
	}
}

func TestClassifyExceptions_CountsBounded(t *testing.T) {
	rows := []models.OrderRow{
		{CanCutPct: 0.5, CutPct: 0.4},
		{CanCutPct: 1.2, CutPct: 1.2},
		{CanCutPct: 0.9, CutPct: 0.95},
	}

	for _, r := range ClassifyExceptions(rows) {
		if r.Count < 0 || r.Count > len(rows) {
			t.Errorf("%s count %d out of bounds", r.Kind, r.Count)
		}
		if r.Count != len(r.Rows) {
			t.Errorf("%s count %d does not match %d rows", r.Kind, r.Count, len(r.Rows))
		}
	}
}

func TestClassifyExceptions_EmptySubset(t *testing.T) {
	reports := ClassifyExceptions(nil)
	if len(reports) != 3 {
		t.Fatalf("Expected all 3 classes, got %d", len(reports))
	}
	for _, r := range reports {
		if r.Count != 0 {
			t.Errorf("%s must count 0 on empty subset", r.Kind)
		}
	}
}

func TestFormatExceptionCount(t *testing.T) {
	if got := FormatExceptionCount(0); got != "--" {
		t.Errorf("Zero count displays as placeholder, got %q", got)
	}
	if got := FormatExceptionCount(17); got != "17" {
		t.Errorf("Expected \"17\", got %q", got)
	}
}
