package models

// StudentStatus defines the possible enrollment states of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "actif"
	StudentInactive  StudentStatus = "inactif"
	StudentSuspended StudentStatus = "suspendu"
)

// Sex defines the possible sex values for a student.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// PaymentMode defines the accepted modes of payment.
type PaymentMode string

const (
	ModeCash         PaymentMode = "especes"
	ModeCheck        PaymentMode = "cheque"
	ModeBankTransfer PaymentMode = "virement"
	ModeMobileMoney  PaymentMode = "mobile"
)

// PaymentModes lists every accepted payment mode, used for input validation.
var PaymentModes = []PaymentMode{ModeCash, ModeCheck, ModeBankTransfer, ModeMobileMoney}

// BalanceStatus defines the settlement state of a computed student balance.
type BalanceStatus string

const (
	Settled   BalanceStatus = "solde"
	Unsettled BalanceStatus = "non_solde"
)

// UserRole defines the application roles.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "caissier"
)
