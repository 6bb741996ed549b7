package models

// StudentBalance is the derived per-student position, recomputed on every
// query and never persisted. Remainder may be negative when a student has
// overpaid.
type StudentBalance struct {
	Matricule string        `json:"matricule"`
	LastName  string        `json:"nom"`
	FirstName string        `json:"prenom"`
	Class     string        `json:"classe"`
	TotalDue  int64         `json:"total_du"`
	TotalPaid int64         `json:"total_paye"`
	Remainder int64         `json:"reste_a_payer"`
	Status    BalanceStatus `json:"statut"`
}

// ClassRecovery is one entry of the dashboard's class ranking: how much of
// what a class owes has been collected.
type ClassRecovery struct {
	Class       string  `json:"classe"`
	RecoveryPct float64 `json:"pourcentage"`
	Collected   int64   `json:"montant"`
}

// DashboardStats holds the aggregate figures shown on the dashboard. Cash
// totals cover three fixed windows anchored on the reference date; the
// payment count covers all payments, not just the current windows.
type DashboardStats struct {
	CollectedToday int64           `json:"total_encaisse_aujourdhui"`
	CollectedWeek  int64           `json:"total_encaisse_semaine"`
	CollectedMonth int64           `json:"total_encaisse_mois"`
	PaymentCount   int             `json:"nombre_paiements"`
	SettledPct     float64         `json:"pourcentage_eleves_soldes"`
	TopClasses     []ClassRecovery `json:"top_classes_recouvrement"`
}
