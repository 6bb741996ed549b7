package models

// PaymentModeTotal is the per-mode slice of a report: how many payments were
// made with a mode and how much they add up to. Only modes present in the
// window appear in a report.
type PaymentModeTotal struct {
	Mode  PaymentMode `json:"mode"`
	Count int         `json:"count"`
	Total int64       `json:"total"`
}

// ClassTotal is the per-class slice of a report, covering every class present
// in the balance list.
type ClassTotal struct {
	Class       string  `json:"classe"`
	TotalDue    int64   `json:"total_du"`
	TotalPaid   int64   `json:"total_paye"`
	RecoveryPct float64 `json:"pourcentage"`
}

// PaymentReport is the derived result for an arbitrary inclusive date range.
type PaymentReport struct {
	StartDate        string             `json:"date_debut"`
	EndDate          string             `json:"date_fin"`
	Payments         []Payment          `json:"paiements"`
	TotalCollected   int64              `json:"total_paiements"`
	TransactionCount int                `json:"nombre_transactions"`
	AveragePayment   float64            `json:"paiement_moyen"`
	ByMode           []PaymentModeTotal `json:"paiements_par_mode"`
	ByClass          []ClassTotal       `json:"paiements_par_classe"`
}
