package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

func TestComputeReportWindowIsInclusive(t *testing.T) {
	payments := []models.Payment{
		pay("2024-01-09", 100),
		pay("2024-01-10", 200),
		pay("2024-01-15", 400),
		pay("2024-01-20", 800),
		pay("2024-01-21", 1600),
	}

	report := ComputeReport("2024-01-10", "2024-01-20", payments, nil)

	require.Len(t, report.Payments, 3)
	assert.Equal(t, int64(1400), report.TotalCollected)
	assert.Equal(t, 3, report.TransactionCount)
	assert.InDelta(t, 1400.0/3, report.AveragePayment, 1e-9)
	assert.Equal(t, "2024-01-10", report.StartDate)
	assert.Equal(t, "2024-01-20", report.EndDate)
}

func TestComputeReportSingleDayWindow(t *testing.T) {
	payments := []models.Payment{
		pay("2024-01-15", 100),
		pay("2024-01-16", 200),
	}

	report := ComputeReport("2024-01-15", "2024-01-15", payments, nil)

	require.Len(t, report.Payments, 1)
	assert.Equal(t, int64(100), report.TotalCollected)
}

func TestComputeReportEmptyWindow(t *testing.T) {
	payments := []models.Payment{pay("2024-01-15", 100)}

	report := ComputeReport("2024-02-01", "2024-02-28", payments, nil)

	assert.Empty(t, report.Payments)
	assert.Equal(t, int64(0), report.TotalCollected)
	assert.Equal(t, 0, report.TransactionCount)
	assert.Equal(t, float64(0), report.AveragePayment)
	assert.Empty(t, report.ByMode)
}

func TestComputeReportModeBreakdown(t *testing.T) {
	payments := []models.Payment{
		{Date: "2024-01-15", Matricule: "ETU001", Amount: 100, Mode: models.ModeCash},
		{Date: "2024-01-15", Matricule: "ETU002", Amount: 50, Mode: models.ModeCash},
		{Date: "2024-01-16", Matricule: "ETU003", Amount: 30, Mode: models.ModeMobileMoney},
	}

	report := ComputeReport("2024-01-01", "2024-01-31", payments, nil)
	require.Len(t, report.ByMode, 2)

	assert.Equal(t, models.ModeCash, report.ByMode[0].Mode)
	assert.Equal(t, 2, report.ByMode[0].Count)
	assert.Equal(t, int64(150), report.ByMode[0].Total)
	assert.Equal(t, models.ModeMobileMoney, report.ByMode[1].Mode)
	assert.Equal(t, 1, report.ByMode[1].Count)
	assert.Equal(t, int64(30), report.ByMode[1].Total)
}

func TestComputeReportModeBreakdownOnlyCoversWindow(t *testing.T) {
	payments := []models.Payment{
		{Date: "2024-01-15", Matricule: "ETU001", Amount: 100, Mode: models.ModeCash},
		{Date: "2023-11-02", Matricule: "ETU002", Amount: 999, Mode: models.ModeCheck},
	}

	report := ComputeReport("2024-01-01", "2024-01-31", payments, nil)

	require.Len(t, report.ByMode, 1)
	assert.Equal(t, models.ModeCash, report.ByMode[0].Mode)
}

func TestComputeReportClassTotalsCoverAllClasses(t *testing.T) {
	balances := []models.StudentBalance{
		settledBalance("6ème A", 150000, 150000),
		settledBalance("6ème A", 150000, 50000),
		settledBalance("5ème B", 195000, 75000),
		settledBalance("CP1", 0, 0),
	}

	report := ComputeReport("2024-01-01", "2024-01-31", nil, balances)
	require.Len(t, report.ByClass, 3)

	assert.Equal(t, "6ème A", report.ByClass[0].Class)
	assert.Equal(t, int64(300000), report.ByClass[0].TotalDue)
	assert.Equal(t, int64(200000), report.ByClass[0].TotalPaid)
	assert.InDelta(t, 200.0/3, report.ByClass[0].RecoveryPct, 1e-9)

	assert.Equal(t, "5ème B", report.ByClass[1].Class)

	// A class owing nothing reports a recovery of zero, not a division artifact.
	assert.Equal(t, "CP1", report.ByClass[2].Class)
	assert.Equal(t, float64(0), report.ByClass[2].RecoveryPct)
}

func TestComputeReportPreservesPaymentOrder(t *testing.T) {
	payments := []models.Payment{
		{ID: "PAY003", Date: "2024-01-20", Matricule: "ETU002", Amount: 75000, Mode: models.ModeMobileMoney},
		{ID: "PAY001", Date: "2024-01-15", Matricule: "ETU001", Amount: 150000, Mode: models.ModeCash},
	}

	report := ComputeReport("2024-01-01", "2024-01-31", payments, nil)
	require.Len(t, report.Payments, 2)

	assert.Equal(t, "PAY003", report.Payments[0].ID)
	assert.Equal(t, "PAY001", report.Payments[1].ID)
}
