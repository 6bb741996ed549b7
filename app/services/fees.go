package services

import (
	"sort"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// ResolveFeesForClass returns the fees applicable to a class: every mandatory
// fee, plus the optional fees linked to the class through an association row.
// The result is ordered by fee code. An unknown or empty class name yields
// the mandatory fees only; there is no validation that the class exists.
func ResolveFeesForClass(className string, fees []models.Fee, classFees []models.ClassFee) []models.Fee {
	linked := make(map[string]bool)
	for _, cf := range classFees {
		if cf.Class == className {
			linked[cf.FeeCode] = true
		}
	}

	resolved := make([]models.Fee, 0)
	for _, fee := range fees {
		if fee.Mandatory || linked[fee.Code] {
			resolved = append(resolved, fee)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Code < resolved[j].Code
	})
	return resolved
}
