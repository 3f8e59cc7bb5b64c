package services

import (
	"testing"
	"time"

	"cutting_report/internal/models"
)

func testRows() []models.OrderRow {
	return []models.OrderRow{
		{Buyer: "GAP", StyleNo: "S1", Status: "Completed", Month: "JAN-26", Week: "WK02"},
		{Buyer: "GAP", StyleNo: "S2", Status: "Running", Month: "JAN-26", Week: "WK04"},
		{Buyer: "H&M", StyleNo: "S3", Status: "Completed", Month: "FEB-26", Week: "WK06"},
		{Buyer: "ZARA", StyleNo: "S4", Status: "Completed", Month: "N/A", Week: "N/A"},
	}
}

func TestApplyFilters_EmptyChainKeepsEverything(t *testing.T) {
	rows := testRows()
	subset, _ := ApplyFilters(rows, models.FilterSelection{})
	if len(subset) != len(rows) {
		t.Errorf("All-empty selection must be a pass-through, got %d of %d rows", len(subset), len(rows))
	}
}

func TestApplyFilters_ResultIsSubset(t *testing.T) {
	rows := testRows()
	sel := models.FilterSelection{
		Months:   []string{"JAN-26"},
		Buyers:   []string{"GAP"},
		Statuses: []string{"Completed"},
	}
	subset, _ := ApplyFilters(rows, sel)
	if len(subset) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(subset))
	}
	if subset[0].StyleNo != "S1" {
		t.Errorf("Wrong row survived: %+v", subset[0])
	}
}

func TestApplyFilters_MonthFilterExcludesNoDateRows(t *testing.T) {
	rows := testRows()
	subset, _ := ApplyFilters(rows, models.FilterSelection{Months: []string{"JAN-26"}})
	for _, r := range subset {
		if r.Month == models.NoDateLabel {
			t.Errorf("N/A rows must drop out once a month filter is active: %+v", r)
		}
		if r.Month != "JAN-26" {
			t.Errorf("Unexpected month %q in subset", r.Month)
		}
	}
	if len(subset) != 2 {
		t.Errorf("Expected 2 JAN-26 rows, got %d", len(subset))
	}
}

func TestApplyFilters_SelectionOfNothingIsNotPassThrough(t *testing.T) {
	rows := testRows()
	subset, _ := ApplyFilters(rows, models.FilterSelection{Buyers: []string{"NOBODY"}})
	if len(subset) != 0 {
		t.Errorf("A non-empty selection matching nothing must return nothing, got %d rows", len(subset))
	}
}

func TestApplyFilters_OptionListsAreStaged(t *testing.T) {
	rows := testRows()
	_, opts := ApplyFilters(rows, models.FilterSelection{Months: []string{"FEB-26"}})

	// Month options always come from the unfiltered set, minus N/A.
	wantMonths := []string{"FEB-26", "JAN-26"}
	if len(opts.Months) != 2 || opts.Months[0] != wantMonths[0] || opts.Months[1] != wantMonths[1] {
		t.Errorf("Month options wrong: %v", opts.Months)
	}

	// Buyer options come from the month-filtered set.
	if len(opts.Buyers) != 1 || opts.Buyers[0] != "H&M" {
		t.Errorf("Buyer options must narrow to the FEB-26 rows, got %v", opts.Buyers)
	}
}

func TestApplyFilters_OptionListsExcludeBlankAndNan(t *testing.T) {
	rows := []models.OrderRow{
		{Buyer: "GAP", Month: "JAN-26"},
		{Buyer: "", Month: "JAN-26"},
		{Buyer: "nan", Month: "JAN-26"},
	}
	_, opts := ApplyFilters(rows, models.FilterSelection{})
	if len(opts.Buyers) != 1 || opts.Buyers[0] != "GAP" {
		t.Errorf("Blank and nan artifacts must not appear as options, got %v", opts.Buyers)
	}
}

func TestDefaultMonthSelection_GracePeriod(t *testing.T) {
	options := []string{"DEC-25", "JAN-26", "FEB-26"}

	// Within the first ten days the report still targets the prior month.
	early := time.Date(2026, time.February, 8, 9, 0, 0, 0, time.UTC)
	if got := DefaultMonthSelection(early, options); len(got) != 1 || got[0] != "JAN-26" {
		t.Errorf("Expected JAN-26 during grace period, got %v", got)
	}

	late := time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC)
	if got := DefaultMonthSelection(late, options); len(got) != 1 || got[0] != "FEB-26" {
		t.Errorf("Expected FEB-26 after grace period, got %v", got)
	}
}

func TestDefaultMonthSelection_AbsentMonthMeansNoFilter(t *testing.T) {
	now := time.Date(2026, time.June, 20, 9, 0, 0, 0, time.UTC)
	if got := DefaultMonthSelection(now, []string{"JAN-26"}); got != nil {
		t.Errorf("A default month missing from the data must not filter, got %v", got)
	}
}

func TestDefaultStatusSelection(t *testing.T) {
	if got := DefaultStatusSelection([]string{"Completed", "Running"}); len(got) != 1 || got[0] != "Completed" {
		t.Errorf("Expected Completed default, got %v", got)
	}
	if got := DefaultStatusSelection([]string{"Running"}); got != nil {
		t.Errorf("Expected no default without Completed rows, got %v", got)
	}
}
