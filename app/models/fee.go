package models

// Fee represents a fee definition. Amounts are whole currency units (XOF),
// there are no fractional subunits. A mandatory fee applies to every student
// regardless of class and never needs an association row.
type Fee struct {
	Code        string `json:"code" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"montant" validate:"required,gt=0"`
	Class       string `json:"classe,omitempty"`
	Mandatory   bool   `json:"obligatoire"`
	Periodicity string `json:"periodicite,omitempty"`
}

// ClassFee links an optional fee to a class: "this fee also applies to this
// class". Mandatory fees apply everywhere and are never listed here.
type ClassFee struct {
	Class   string `json:"classe" validate:"required"`
	FeeCode string `json:"code_frais" validate:"required"`
}
