package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

func testStudent(matricule, class string) models.Student {
	return models.Student{
		Matricule: matricule,
		LastName:  "KOUAME",
		FirstName: "Jean",
		Sex:       models.Male,
		Class:     class,
		Status:    models.StudentActive,
	}
}

func TestComputeStudentBalanceFullyPaid(t *testing.T) {
	student := testStudent("ETU001", "6ème A")
	fees := []models.Fee{{Code: "SCOL001", Amount: 150000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Date: "2024-01-15", Matricule: "ETU001", FeeCode: "SCOL001", Amount: 150000, Mode: models.ModeCash},
	}

	b := ComputeStudentBalance(student, fees, payments)

	assert.Equal(t, int64(150000), b.TotalDue)
	assert.Equal(t, int64(150000), b.TotalPaid)
	assert.Equal(t, int64(0), b.Remainder)
	assert.Equal(t, models.Settled, b.Status)
}

func TestComputeStudentBalancePartialPayments(t *testing.T) {
	student := testStudent("ETU001", "6ème A")
	fees := []models.Fee{{Code: "SCOL001", Amount: 150000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Date: "2024-01-15", Matricule: "ETU001", FeeCode: "SCOL001", Amount: 75000, Mode: models.ModeCash},
		{ID: "PAY002", Date: "2024-02-01", Matricule: "ETU001", FeeCode: "SCOL001", Amount: 50000, Mode: models.ModeMobileMoney},
	}

	b := ComputeStudentBalance(student, fees, payments)

	assert.Equal(t, int64(125000), b.TotalPaid)
	assert.Equal(t, int64(25000), b.Remainder)
	assert.Equal(t, models.Unsettled, b.Status)
}

func TestComputeStudentBalanceOverpaid(t *testing.T) {
	student := testStudent("ETU001", "6ème A")
	fees := []models.Fee{{Code: "INSC001", Amount: 25000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Matricule: "ETU001", FeeCode: "INSC001", Amount: 30000, Mode: models.ModeCash},
	}

	b := ComputeStudentBalance(student, fees, payments)

	assert.Equal(t, int64(-5000), b.Remainder)
	assert.Equal(t, models.Settled, b.Status)
}

func TestComputeStudentBalanceNoApplicableFees(t *testing.T) {
	// A student with no applicable fees owes nothing, so they show as settled
	// even with no payment on file.
	b := ComputeStudentBalance(testStudent("ETU009", "CP1"), nil, nil)

	assert.Equal(t, int64(0), b.TotalDue)
	assert.Equal(t, int64(0), b.TotalPaid)
	assert.Equal(t, int64(0), b.Remainder)
	assert.Equal(t, models.Settled, b.Status)
}

func TestComputeStudentBalancePaymentsSummedRegardlessOfFeeCode(t *testing.T) {
	student := testStudent("ETU001", "6ème A")
	fees := []models.Fee{{Code: "SCOL001", Amount: 100000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Matricule: "ETU001", FeeCode: "AUTRE999", Amount: 100000, Mode: models.ModeCheck},
	}

	b := ComputeStudentBalance(student, fees, payments)

	assert.Equal(t, int64(100000), b.TotalPaid)
	assert.Equal(t, models.Settled, b.Status)
}

func TestComputeStudentBalanceNegativeAmountsSummedAsIs(t *testing.T) {
	student := testStudent("ETU001", "6ème A")
	fees := []models.Fee{{Code: "SCOL001", Amount: 100000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Matricule: "ETU001", Amount: 50000, Mode: models.ModeCash},
		{ID: "PAY002", Matricule: "ETU001", Amount: -20000, Mode: models.ModeCash},
	}

	b := ComputeStudentBalance(student, fees, payments)

	assert.Equal(t, int64(30000), b.TotalPaid)
	assert.Equal(t, int64(70000), b.Remainder)
}

func TestComputeAllBalancesInvariants(t *testing.T) {
	students := []models.Student{
		testStudent("ETU001", "6ème A"),
		testStudent("ETU002", "5ème B"),
		testStudent("ETU003", "6ème A"),
	}
	fees := []models.Fee{
		{Code: "SCOL001", Amount: 150000, Mandatory: true},
		{Code: "CANT001", Amount: 45000, Mandatory: false},
	}
	classFees := []models.ClassFee{{Class: "5ème B", FeeCode: "CANT001"}}
	payments := []models.Payment{
		{ID: "PAY001", Date: "2024-01-15", Matricule: "ETU001", Amount: 150000, Mode: models.ModeCash},
		{ID: "PAY002", Date: "2024-01-20", Matricule: "ETU002", Amount: 75000, Mode: models.ModeMobileMoney},
	}

	balances := ComputeAllBalances(students, fees, classFees, payments)
	require.Len(t, balances, 3)

	for _, b := range balances {
		assert.Equal(t, b.TotalDue-b.TotalPaid, b.Remainder, "matricule %s", b.Matricule)
		if b.Remainder <= 0 {
			assert.Equal(t, models.Settled, b.Status, "matricule %s", b.Matricule)
		} else {
			assert.Equal(t, models.Unsettled, b.Status, "matricule %s", b.Matricule)
		}
	}

	// Input order is preserved.
	assert.Equal(t, "ETU001", balances[0].Matricule)
	assert.Equal(t, "ETU002", balances[1].Matricule)
	assert.Equal(t, "ETU003", balances[2].Matricule)

	// Class association only applies to 5ème B.
	assert.Equal(t, int64(150000), balances[0].TotalDue)
	assert.Equal(t, int64(195000), balances[1].TotalDue)
}

func TestComputeAllBalancesIdempotent(t *testing.T) {
	students := []models.Student{
		testStudent("ETU001", "6ème A"),
		testStudent("ETU002", "5ème B"),
	}
	fees := []models.Fee{{Code: "SCOL001", Amount: 150000, Mandatory: true}}
	payments := []models.Payment{
		{ID: "PAY001", Date: "2024-01-15", Matricule: "ETU002", Amount: 50000, Mode: models.ModeCash},
	}

	first := ComputeAllBalances(students, fees, nil, payments)
	second := ComputeAllBalances(students, fees, nil, payments)

	assert.Equal(t, first, second)
}

func TestComputeAllBalancesEmptyInputs(t *testing.T) {
	balances := ComputeAllBalances(nil, nil, nil, nil)
	assert.Empty(t, balances)
}
