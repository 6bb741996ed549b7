package services

import (
	"sort"
	"time"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// topClassCount is how many classes the dashboard ranking keeps.
const topClassCount = 5

// ComputeDashboardStats reduces the payment and balance lists into the
// figures shown on the dashboard. Window boundaries are derived once from
// the caller's reference time; each window total is computed independently
// from the full payment list by delegating to ComputeReport.
//
// PaymentCount covers ALL payments, not just the current windows. The name
// on the wire suggests otherwise; kept as-is for the existing display code
// (see DESIGN.md).
func ComputeDashboardStats(payments []models.Payment, balances []models.StudentBalance, now time.Time) models.DashboardStats {
	today := DateOf(now)
	weekStart := StartOfWeek(now)
	monthStart := StartOfMonth(now)

	stats := models.DashboardStats{
		CollectedToday: ComputeReport(today, today, payments, nil).TotalCollected,
		CollectedWeek:  ComputeReport(weekStart, today, payments, nil).TotalCollected,
		CollectedMonth: ComputeReport(monthStart, today, payments, nil).TotalCollected,
		PaymentCount:   len(payments),
		TopClasses:     topClasses(balances),
	}

	if len(balances) > 0 {
		settled := 0
		for _, b := range balances {
			if b.Status == models.Settled {
				settled++
			}
		}
		stats.SettledPct = float64(settled) / float64(len(balances)) * 100
	}
	return stats
}

// topClasses ranks classes by recovery percentage, descending. The sort is
// stable: ties keep the grouping order, which is first appearance in the
// balance list.
func topClasses(balances []models.StudentBalance) []models.ClassRecovery {
	totals := classTotals(balances)

	ranking := make([]models.ClassRecovery, 0, len(totals))
	for _, t := range totals {
		ranking = append(ranking, models.ClassRecovery{
			Class:       t.Class,
			RecoveryPct: t.RecoveryPct,
			Collected:   t.TotalPaid,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].RecoveryPct > ranking[j].RecoveryPct
	})
	if len(ranking) > topClassCount {
		ranking = ranking[:topClassCount]
	}
	return ranking
}
