package services

import (
	"sort"
	"time"

	"cutting_report/internal/models"
)

// DefaultStatus is preselected on the status filter when present.
const DefaultStatus = "Completed"

// keep returns the rows whose key is in the selection. An empty selection is
// a pass-through, not an empty result.
func keep(rows []models.OrderRow, selection []string, key func(models.OrderRow) string) []models.OrderRow {
	if len(selection) == 0 {
		return rows
	}
	wanted := make(map[string]struct{}, len(selection))
	for _, v := range selection {
		wanted[v] = struct{}{}
	}
	out := make([]models.OrderRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := wanted[key(r)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// optionValues collects the distinct values of key over rows, sorted as
// strings. Blank cells and the literal "nan" some exported workbooks carry
// are excluded; date bucket lists additionally drop the "N/A" placeholder.
func optionValues(rows []models.OrderRow, key func(models.OrderRow) string, dropNoDate bool) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		v := key(r)
		if v == "" || v == "nan" {
			continue
		}
		if dropNoDate && v == models.NoDateLabel {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func monthKey(r models.OrderRow) string  { return r.Month }
func weekKey(r models.OrderRow) string   { return r.Week }
func buyerKey(r models.OrderRow) string  { return r.Buyer }
func statusKey(r models.OrderRow) string { return r.Status }
func styleKey(r models.OrderRow) string  { return r.StyleNo }

// ApplyFilters narrows rows through the month, buyer, status and style
// dimensions in that order, returning the working subset together with the
// option lists. Each dimension's options come from the row set as it stands
// when that filter is reached, so later lists only offer reachable values.
func ApplyFilters(rows []models.OrderRow, sel models.FilterSelection) ([]models.OrderRow, models.FilterOptions) {
	var opts models.FilterOptions

	opts.Months = optionValues(rows, monthKey, true)
	rows = keep(rows, sel.Months, monthKey)

	opts.Buyers = optionValues(rows, buyerKey, false)
	rows = keep(rows, sel.Buyers, buyerKey)

	opts.Statuses = optionValues(rows, statusKey, false)
	rows = keep(rows, sel.Statuses, statusKey)

	opts.Styles = optionValues(rows, styleKey, false)
	rows = keep(rows, sel.Styles, styleKey)

	return rows, opts
}

// DefaultMonthSelection picks the reporting month for a fresh view: the
// previous calendar month while still inside the ten-day grace period after
// month end, otherwise the current month. The default only applies when the
// month actually occurs in the data.
func DefaultMonthSelection(now time.Time, monthOptions []string) []string {
	target := now
	if now.Day() <= 10 {
		target = now.AddDate(0, 0, -now.Day())
	}
	label := models.MonthLabel(&target)
	for _, m := range monthOptions {
		if m == label {
			return []string{label}
		}
	}
	return nil
}

// DefaultStatusSelection preselects the completed-orders view when the data
// has any completed rows.
func DefaultStatusSelection(statusOptions []string) []string {
	for _, s := range statusOptions {
		if s == DefaultStatus {
			return []string{DefaultStatus}
		}
	}
	return nil
}
