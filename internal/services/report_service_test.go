package services

import (
	"testing"
	"time"

	"cutting_report/internal/models"
)

// stubData serves canned rows per URL, standing in for the fetch+cache path.
type stubData map[string][]models.OrderRow

func (s stubData) LoadRows(url string) []models.OrderRow { return s[url] }
func (s stubData) InvalidateAll()                        {}

func reportUnit(name, url string) models.UnitConfig {
	return models.UnitConfig{Name: name, DashboardURL: url}
}

func TestBuildReport_AppliesDefaults(t *testing.T) {
	data := stubData{
		"u1": {
			{Buyer: "GAP", Status: "Completed", Month: "JAN-26", OrdQty: 100},
			{Buyer: "GAP", Status: "Running", Month: "JAN-26", OrdQty: 50},
			{Buyer: "GAP", Status: "Completed", Month: "FEB-26", OrdQty: 10},
		},
	}
	svc := NewReportService(data)

	// Feb 5th is inside the grace period, so the default month is January.
	now := time.Date(2026, time.February, 5, 8, 0, 0, 0, time.UTC)
	report := svc.BuildReport(reportUnit("ARASIKERE", "u1"), models.FilterSelection{}, true, now)

	if len(report.Selection.Months) != 1 || report.Selection.Months[0] != "JAN-26" {
		t.Errorf("Expected JAN-26 default month, got %v", report.Selection.Months)
	}
	if len(report.Selection.Statuses) != 1 || report.Selection.Statuses[0] != "Completed" {
		t.Errorf("Expected Completed default status, got %v", report.Selection.Statuses)
	}
	if report.RowCount != 1 {
		t.Errorf("Expected 1 row after defaults, got %d", report.RowCount)
	}
	if report.KPIs.SumOrd != 100 {
		t.Errorf("Expected sum_ord 100, got %v", report.KPIs.SumOrd)
	}
	if len(report.Buyers) != 1 || report.Buyers[0].Buyer != "GAP" {
		t.Errorf("Expected the buyer breakdown over the working subset, got %+v", report.Buyers)
	}
}

func TestBuildReport_WithoutDefaultsIsPassThrough(t *testing.T) {
	data := stubData{
		"u1": {
			{Status: "Completed", Month: "JAN-26"},
			{Status: "Running", Month: "FEB-26"},
		},
	}
	svc := NewReportService(data)

	report := svc.BuildReport(reportUnit("RANCHI", "u1"), models.FilterSelection{}, false, time.Now())
	if report.RowCount != 2 {
		t.Errorf("No defaults, no filters: all rows stay, got %d", report.RowCount)
	}
}

func TestBuildReport_NoDataYieldsZeroReport(t *testing.T) {
	svc := NewReportService(stubData{})

	report := svc.BuildReport(reportUnit("INDORE", "missing"), models.FilterSelection{}, true, time.Now())

	if report.RowCount != 0 {
		t.Errorf("Expected 0 rows, got %d", report.RowCount)
	}
	if report.KPIs != (models.KPIRecord{}) {
		t.Errorf("Unavailable source must read as zero KPIs, got %+v", report.KPIs)
	}
	for _, card := range report.Exceptions {
		if card.Count != 0 || card.Display != "--" {
			t.Errorf("Expected placeholder cards, got %+v", card)
		}
	}
}

func TestBuildReport_ExceptionCards(t *testing.T) {
	data := stubData{
		"u1": {
			{CanCutPct: 1.2, CutPct: 0.9},  // ex1 + ex3
			{CanCutPct: 1.2, CutPct: 1.05}, // clean
		},
	}
	svc := NewReportService(data)

	report := svc.BuildReport(reportUnit("MATODA", "u1"), models.FilterSelection{}, false, time.Now())

	if len(report.Exceptions) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(report.Exceptions))
	}
	byKind := make(map[models.ExceptionKind]models.ExceptionCard)
	for _, card := range report.Exceptions {
		byKind[card.Kind] = card
	}

	if c := byKind[models.ExceptionCutBelowTarget]; c.Count != 1 || c.Display != "1" {
		t.Errorf("ex1 card wrong: %+v", c)
	}
	if c := byKind[models.ExceptionCanCutBelowTarget]; c.Count != 0 || c.Display != "--" {
		t.Errorf("ex2 card wrong: %+v", c)
	}
	if c := byKind[models.ExceptionCutBehindCanCut]; c.Count != 1 {
		t.Errorf("ex3 card wrong: %+v", c)
	}
}

func TestExceptionDetail(t *testing.T) {
	data := stubData{
		"u1": {
			{StyleNo: "S1", Month: "JAN-26", CutPct: 0.8},
			{StyleNo: "S2", Month: "JAN-26", CutPct: 1.1},
			{StyleNo: "S3", Month: "FEB-26", CutPct: 0.5},
		},
	}
	svc := NewReportService(data)
	sel := models.FilterSelection{Months: []string{"JAN-26"}}

	detail, err := svc.ExceptionDetail(reportUnit("ARASIKERE", "u1"), sel, models.ExceptionCutBelowTarget)
	if err != nil {
		t.Fatalf("ExceptionDetail failed: %v", err)
	}

	// The FEB-26 exception row is outside the selection.
	if detail.Count != 1 || detail.Rows[0].StyleNo != "S1" {
		t.Errorf("Expected only S1, got %+v", detail.Rows)
	}

	if _, err := svc.ExceptionDetail(reportUnit("ARASIKERE", "u1"), sel, "ex9"); err == nil {
		t.Error("Unknown exception kind must error")
	}
}
