package services

import (
	"fmt"
	"time"

	"cutting_report/internal/models"
)

// ReportService builds the single-unit dashboard view: working subset, KPI
// record, health classification and exception cards for one unit and one
// filter selection.
type ReportService interface {
	BuildReport(unit models.UnitConfig, sel models.FilterSelection, applyDefaults bool, now time.Time) models.DashboardReport
	ExceptionDetail(unit models.UnitConfig, sel models.FilterSelection, kind models.ExceptionKind) (models.ExceptionReport, error)
}

type reportService struct {
	data DataService
}

func NewReportService(data DataService) ReportService {
	return &reportService{data: data}
}

func (s *reportService) BuildReport(unit models.UnitConfig, sel models.FilterSelection, applyDefaults bool, now time.Time) models.DashboardReport {
	rows := s.data.LoadRows(unit.DashboardURL)

	if applyDefaults {
		sel = applyDefaultSelection(rows, sel, now)
	}

	subset, opts := ApplyFilters(rows, sel)

	report := models.DashboardReport{
		Unit:      unit.Name,
		RowCount:  len(subset),
		Selection: sel,
		Options:   opts,
	}

	if len(subset) > 0 {
		report.KPIs = ComputeKPIs(subset)
		report.Buyers = ComputeBuyerPerformance(subset)
	}
	report.Health = ClassifyHealth(report.KPIs)

	for _, ex := range ClassifyExceptions(subset) {
		report.Exceptions = append(report.Exceptions, models.ExceptionCard{
			Kind:    ex.Kind,
			Title:   ex.Title,
			Count:   ex.Count,
			Display: FormatExceptionCount(ex.Count),
		})
	}

	return report
}

func (s *reportService) ExceptionDetail(unit models.UnitConfig, sel models.FilterSelection, kind models.ExceptionKind) (models.ExceptionReport, error) {
	title, ok := exceptionTitles[kind]
	if !ok {
		return models.ExceptionReport{}, fmt.Errorf("unknown exception kind %q", kind)
	}

	rows := s.data.LoadRows(unit.DashboardURL)
	subset, _ := ApplyFilters(rows, sel)
	matched := ExceptionRows(subset, kind)

	return models.ExceptionReport{
		Kind:  kind,
		Title: title,
		Count: len(matched),
		Rows:  matched,
	}, nil
}

// applyDefaultSelection fills in the reporting-month and completed-status
// defaults on dimensions the user left empty. Each default only applies when
// the value actually occurs at that filter stage.
func applyDefaultSelection(rows []models.OrderRow, sel models.FilterSelection, now time.Time) models.FilterSelection {
	if len(sel.Months) == 0 {
		sel.Months = DefaultMonthSelection(now, optionValues(rows, monthKey, true))
	}
	if len(sel.Statuses) == 0 {
		staged := keep(keep(rows, sel.Months, monthKey), sel.Buyers, buyerKey)
		sel.Statuses = DefaultStatusSelection(optionValues(staged, statusKey, false))
	}
	return sel
}
