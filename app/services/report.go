package services

import "github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"

// ComputeReport aggregates payments falling in the inclusive [startDate,
// endDate] window. Dates are fixed-width ISO strings compared
// lexicographically. The mode breakdown only lists modes present in the
// window, in order of first appearance; the class breakdown covers every
// class present in the balance list.
func ComputeReport(startDate, endDate string, payments []models.Payment, balances []models.StudentBalance) models.PaymentReport {
	filtered := make([]models.Payment, 0)
	for _, p := range payments {
		if p.Date >= startDate && p.Date <= endDate {
			filtered = append(filtered, p)
		}
	}

	var total int64
	for _, p := range filtered {
		total += p.Amount
	}
	average := 0.0
	if len(filtered) > 0 {
		average = float64(total) / float64(len(filtered))
	}

	return models.PaymentReport{
		StartDate:        startDate,
		EndDate:          endDate,
		Payments:         filtered,
		TotalCollected:   total,
		TransactionCount: len(filtered),
		AveragePayment:   average,
		ByMode:           paymentsByMode(filtered),
		ByClass:          classTotals(balances),
	}
}

// paymentsByMode groups payments by mode, keeping first-appearance order.
// Absent modes are omitted, not zero-filled.
func paymentsByMode(payments []models.Payment) []models.PaymentModeTotal {
	index := make(map[models.PaymentMode]int)
	breakdown := make([]models.PaymentModeTotal, 0)
	for _, p := range payments {
		i, ok := index[p.Mode]
		if !ok {
			i = len(breakdown)
			index[p.Mode] = i
			breakdown = append(breakdown, models.PaymentModeTotal{Mode: p.Mode})
		}
		breakdown[i].Count++
		breakdown[i].Total += p.Amount
	}
	return breakdown
}

// classTotals sums due and paid per class over the balance list, keeping
// first-appearance order. A class whose total due is zero has a recovery
// percentage of zero, never a division artifact.
func classTotals(balances []models.StudentBalance) []models.ClassTotal {
	index := make(map[string]int)
	totals := make([]models.ClassTotal, 0)
	for _, b := range balances {
		i, ok := index[b.Class]
		if !ok {
			i = len(totals)
			index[b.Class] = i
			totals = append(totals, models.ClassTotal{Class: b.Class})
		}
		totals[i].TotalDue += b.TotalDue
		totals[i].TotalPaid += b.TotalPaid
	}
	for i := range totals {
		if totals[i].TotalDue > 0 {
			totals[i].RecoveryPct = float64(totals[i].TotalPaid) / float64(totals[i].TotalDue) * 100
		}
	}
	return totals
}
