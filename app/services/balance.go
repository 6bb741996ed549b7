package services

import "github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"

// ComputeStudentBalance computes one student's position from the fees
// resolved for their class and the payments recorded under their matricule.
// Payments are summed regardless of which fee code they reference; there is
// no per-fee matching or double-payment detection. Amounts are summed as-is,
// rejecting zero or negative payments is the data-entry layer's job.
//
// A student with no applicable fees owes nothing and therefore always shows
// as settled, even with no payment on file. Preserved as-is: display code
// depends on the current behavior (see DESIGN.md).
func ComputeStudentBalance(student models.Student, resolvedFees []models.Fee, studentPayments []models.Payment) models.StudentBalance {
	var totalDue int64
	for _, fee := range resolvedFees {
		totalDue += fee.Amount
	}

	var totalPaid int64
	for _, p := range studentPayments {
		totalPaid += p.Amount
	}

	remainder := totalDue - totalPaid
	status := models.Unsettled
	if remainder <= 0 {
		status = models.Settled
	}

	return models.StudentBalance{
		Matricule: student.Matricule,
		LastName:  student.LastName,
		FirstName: student.FirstName,
		Class:     student.Class,
		TotalDue:  totalDue,
		TotalPaid: totalPaid,
		Remainder: remainder,
		Status:    status,
	}
}

// ComputeAllBalances computes a balance for every student, in input order.
// Payments are indexed by matricule and fee resolution is cached per class so
// the pass stays close to linear in the size of the collections.
func ComputeAllBalances(students []models.Student, fees []models.Fee, classFees []models.ClassFee, payments []models.Payment) []models.StudentBalance {
	byMatricule := make(map[string][]models.Payment)
	for _, p := range payments {
		byMatricule[p.Matricule] = append(byMatricule[p.Matricule], p)
	}

	feesByClass := make(map[string][]models.Fee)
	balances := make([]models.StudentBalance, 0, len(students))
	for _, student := range students {
		resolved, ok := feesByClass[student.Class]
		if !ok {
			resolved = ResolveFeesForClass(student.Class, fees, classFees)
			feesByClass[student.Class] = resolved
		}
		balances = append(balances, ComputeStudentBalance(student, resolved, byMatricule[student.Matricule]))
	}
	return balances
}
