package services

import (
	"sort"

	"cutting_report/internal/models"
)

// ComputeKPIs aggregates the working subset into the fixed KPI record.
//
// The consumption averages are order-quantity weighted: standard consumption
// is fabric required over order quantity, achieved is fabric used over cut
// quantity. The two percent averages stay plain row means; quantity-based
// and percentage-based metrics are averaged differently on purpose, that is
// how the reports are read on the floor.
//
// Every ratio is guarded: a zero denominator yields 0, never NaN. An empty
// subset therefore yields the zero record.
func ComputeKPIs(rows []models.OrderRow) models.KPIRecord {
	var k models.KPIRecord
	if len(rows) == 0 {
		return k
	}

	var cadWeighted float64
	for _, r := range rows {
		k.SumCut += r.CutQty
		k.SumCanCut += r.CanCutQty
		k.SumOrd += r.OrdQty
		k.SumReq += r.FabReq
		k.SumRcvd += r.FabRcvd
		k.SumUsed += r.FabricUsed
		k.SumStock += r.LeftoverStock
		k.AvgCanCutP += r.CanCutPct
		k.AvgCutP += r.CutPct
		cadWeighted += r.CADCons * r.OrdQty
	}

	n := float64(len(rows))
	k.AvgCanCutP = k.AvgCanCutP / n * 100
	k.AvgCutP = k.AvgCutP / n * 100

	if k.SumOrd > 0 {
		k.AvgStd = k.SumReq / k.SumOrd
		k.AvgCAD = cadWeighted / k.SumOrd
	}
	if k.SumCut > 0 {
		k.AvgAchieved = k.SumUsed / k.SumCut
	}
	if k.SumCanCut > 0 {
		k.PerfCut = k.SumCut / k.SumCanCut * 100
	}
	if k.SumReq > 0 {
		k.PerfRcvd = k.SumRcvd / k.SumReq * 100
	}
	k.PerfCons = k.AvgAchieved - k.AvgStd

	return k
}

// ComputeBuyerPerformance groups the working subset by buyer and averages
// the two percent columns per group, unweighted like the subset-level
// percent means. Rows come back descending by can-cut so the weakest buyers
// sit last; ties keep buyer-name order.
func ComputeBuyerPerformance(rows []models.OrderRow) []models.BuyerPerformance {
	type accum struct {
		canCut float64
		cut    float64
		n      int
	}
	groups := make(map[string]*accum)
	for _, r := range rows {
		g, ok := groups[r.Buyer]
		if !ok {
			g = &accum{}
			groups[r.Buyer] = g
		}
		g.canCut += r.CanCutPct
		g.cut += r.CutPct
		g.n++
	}

	out := make([]models.BuyerPerformance, 0, len(groups))
	for buyer, g := range groups {
		n := float64(g.n)
		out = append(out, models.BuyerPerformance{
			Buyer:      buyer,
			AvgCanCutP: g.canCut / n * 100,
			AvgCutP:    g.cut / n * 100,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Buyer < out[j].Buyer })
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgCanCutP > out[j].AvgCanCutP })
	return out
}

func goodBad(good bool) models.HealthState {
	if good {
		return models.HealthGood
	}
	return models.HealthBad
}

// ClassifyHealth maps the KPI record onto card colours. Can-cut percentage
// is the one three-way signal; exactly 100 is caution, not good.
func ClassifyHealth(k models.KPIRecord) models.KPIHealth {
	h := models.KPIHealth{
		PerfCut:  goodBad(k.PerfCut >= 100),
		CutQty:   goodBad(k.AvgCutP >= k.AvgCanCutP),
		FabRcvd:  goodBad(k.SumRcvd >= k.SumReq),
		Stock:    goodBad(k.SumStock >= 0),
		CADCons:  goodBad(k.AvgCAD <= k.AvgStd),
		Achieved: goodBad(k.AvgAchieved <= k.AvgStd),
		PerfCons: goodBad(!(k.PerfCons > 0)),
	}
	switch {
	case k.AvgCanCutP > 100:
		h.CanCutQty = models.HealthGood
	case k.AvgCanCutP == 100:
		h.CanCutQty = models.HealthCaution
	default:
		h.CanCutQty = models.HealthBad
	}
	return h
}
