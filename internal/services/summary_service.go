package services

import (
	"sort"

	"cutting_report/internal/models"
)

// SummaryService assembles the cross-unit rollup: one reduced KPI row per
// unit under a shared month/week/status selection. Option lists are unions
// across every unit's data, each narrowed by the dimensions already applied.
type SummaryService interface {
	BuildSummary(units []models.UnitConfig, sel models.FilterSelection) models.SummaryReport
}

type summaryService struct {
	data DataService
}

func NewSummaryService(data DataService) SummaryService {
	return &summaryService{data: data}
}

func (s *summaryService) BuildSummary(units []models.UnitConfig, sel models.FilterSelection) models.SummaryReport {
	perUnit := make([][]models.OrderRow, len(units))
	for i, u := range units {
		perUnit[i] = s.data.LoadRows(u.DashboardURL)
	}

	report := models.SummaryReport{
		Selection: sel,
		Options:   summaryOptions(perUnit, sel),
	}

	// Row order follows the configured unit order, never a metric sort.
	for i, u := range units {
		subset := keep(perUnit[i], sel.Months, monthKey)
		subset = keep(subset, sel.Weeks, weekKey)
		subset = keep(subset, sel.Statuses, statusKey)
		if len(subset) == 0 {
			continue
		}

		k := ComputeKPIs(subset)
		report.Rows = append(report.Rows, models.UnitSummaryRow{
			Unit:       u.Name,
			OrdQty:     k.SumOrd,
			StdCons:    k.AvgStd,
			CADCons:    k.AvgCAD,
			AvgCanCutP: k.AvgCanCutP,
			AvgCutP:    k.AvgCutP,
			Leftover:   k.SumStock,
		})
	}

	return report
}

// summaryOptions computes the union option lists: months from all rows,
// weeks from the month-filtered rows, statuses from the month+week-filtered
// rows.
func summaryOptions(perUnit [][]models.OrderRow, sel models.FilterSelection) models.SummaryOptions {
	var opts models.SummaryOptions

	months := make(map[string]struct{})
	weeks := make(map[string]struct{})
	statuses := make(map[string]struct{})

	for _, rows := range perUnit {
		for _, v := range optionValues(rows, monthKey, true) {
			months[v] = struct{}{}
		}
		staged := keep(rows, sel.Months, monthKey)
		for _, v := range optionValues(staged, weekKey, true) {
			weeks[v] = struct{}{}
		}
		staged = keep(staged, sel.Weeks, weekKey)
		for _, v := range optionValues(staged, statusKey, false) {
			statuses[v] = struct{}{}
		}
	}

	opts.Months = sortedKeys(months)
	opts.Weeks = sortedKeys(weeks)
	opts.Statuses = sortedKeys(statuses)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
