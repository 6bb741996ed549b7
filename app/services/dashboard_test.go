package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// Wednesday 2024-01-17; week starts Sunday 2024-01-14, month on 2024-01-01.
var testNow = time.Date(2024, time.January, 17, 10, 30, 0, 0, time.UTC)

func pay(date string, amount int64) models.Payment {
	return models.Payment{Date: date, Matricule: "ETU001", Amount: amount, Mode: models.ModeCash}
}

func settledBalance(class string, due, paid int64) models.StudentBalance {
	status := models.Unsettled
	if due-paid <= 0 {
		status = models.Settled
	}
	return models.StudentBalance{
		Matricule: "ETU001",
		Class:     class,
		TotalDue:  due,
		TotalPaid: paid,
		Remainder: due - paid,
		Status:    status,
	}
}

func TestComputeDashboardStatsWindows(t *testing.T) {
	payments := []models.Payment{
		pay("2024-01-17", 1000), // today
		pay("2024-01-15", 2000), // this week, not today
		pay("2024-01-05", 4000), // this month, before the week
		pay("2023-12-28", 8000), // previous month
	}

	stats := ComputeDashboardStats(payments, nil, testNow)

	assert.Equal(t, int64(1000), stats.CollectedToday)
	assert.Equal(t, int64(3000), stats.CollectedWeek)
	assert.Equal(t, int64(7000), stats.CollectedMonth)
	// The count is global, not windowed.
	assert.Equal(t, 4, stats.PaymentCount)
}

func TestComputeDashboardStatsFirstOfMonthBoundary(t *testing.T) {
	payments := []models.Payment{pay("2024-01-01", 5000)}

	stats := ComputeDashboardStats(payments, nil, testNow)

	assert.Equal(t, int64(5000), stats.CollectedMonth)
	assert.Equal(t, int64(0), stats.CollectedToday)
}

func TestComputeDashboardStatsWeekStartsOnSunday(t *testing.T) {
	payments := []models.Payment{
		pay("2024-01-14", 100), // Sunday, inclusive
		pay("2024-01-13", 200), // Saturday, previous week
	}

	stats := ComputeDashboardStats(payments, nil, testNow)

	assert.Equal(t, int64(100), stats.CollectedWeek)
}

func TestComputeDashboardStatsZeroStudents(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, testNow)

	assert.Equal(t, float64(0), stats.SettledPct)
	assert.Empty(t, stats.TopClasses)
	assert.Equal(t, 0, stats.PaymentCount)
}

func TestComputeDashboardStatsSettledPercentage(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("6ème A", 100, 100),
		settledBalance("6ème A", 100, 40),
		settledBalance("5ème B", 100, 120),
		settledBalance("5ème B", 100, 0),
	}

	stats := ComputeDashboardStats(nil, balances, testNow)

	assert.InDelta(t, 50.0, stats.SettledPct, 1e-9)
}

func TestComputeDashboardStatsTopClassesRanking(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("6ème A", 100000, 40000), // 40%
		settledBalance("5ème B", 100000, 90000), // 90%
		settledBalance("4ème C", 100000, 60000), // 60%
	}

	stats := ComputeDashboardStats(nil, balances, testNow)
	require.Len(t, stats.TopClasses, 3)

	assert.Equal(t, "5ème B", stats.TopClasses[0].Class)
	assert.Equal(t, "4ème C", stats.TopClasses[1].Class)
	assert.Equal(t, "6ème A", stats.TopClasses[2].Class)
	assert.InDelta(t, 90.0, stats.TopClasses[0].RecoveryPct, 1e-9)
	assert.Equal(t, int64(90000), stats.TopClasses[0].Collected)
}

func TestComputeDashboardStatsTopClassesTiesKeepGroupingOrder(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("6ème A", 100, 50),
		settledBalance("5ème B", 200, 100),
		settledBalance("4ème C", 100, 80),
	}

	stats := ComputeDashboardStats(nil, balances, testNow)
	require.Len(t, stats.TopClasses, 3)

	assert.Equal(t, "4ème C", stats.TopClasses[0].Class)
	// 6ème A and 5ème B are both at 50%: first appearance wins.
	assert.Equal(t, "6ème A", stats.TopClasses[1].Class)
	assert.Equal(t, "5ème B", stats.TopClasses[2].Class)
}

func TestComputeDashboardStatsTopClassesCapped(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("6ème A", 100, 10),
		settledBalance("6ème B", 100, 20),
		settledBalance("5ème A", 100, 30),
		settledBalance("5ème B", 100, 40),
		settledBalance("4ème A", 100, 50),
		settledBalance("4ème B", 100, 60),
		settledBalance("3ème A", 100, 70),
	}

	stats := ComputeDashboardStats(nil, balances, testNow)

	require.Len(t, stats.TopClasses, 5)
	assert.Equal(t, "3ème A", stats.TopClasses[0].Class)
	assert.Equal(t, "5ème A", stats.TopClasses[4].Class)
}

func TestComputeDashboardStatsZeroDueClass(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("CP1", 0, 0),
		settledBalance("6ème A", 100, 50),
	}

	stats := ComputeDashboardStats(nil, balances, testNow)
	require.Len(t, stats.TopClasses, 2)

	assert.Equal(t, "6ème A", stats.TopClasses[0].Class)
	assert.Equal(t, "CP1", stats.TopClasses[1].Class)
	assert.Equal(t, float64(0), stats.TopClasses[1].RecoveryPct)
}
