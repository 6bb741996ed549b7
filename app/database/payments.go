package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

const paymentColumns = `id, to_char(date_paiement, 'YYYY-MM-DD'), matricule, code_frais,
	montant_paye, mode, COALESCE(num_piece, ''), caissier, COALESCE(commentaires, '')`

func scanPayment(rows *sql.Rows) (models.Payment, error) {
	var p models.Payment
	var mode string
	err := rows.Scan(
		&p.ID, &p.Date, &p.Matricule, &p.FeeCode,
		&p.Amount, &mode, &p.Reference, &p.Cashier, &p.Comment,
	)
	p.Mode = models.PaymentMode(mode)
	return p, err
}

// PaymentFilters narrows down GetPayments. Zero values mean no filtering.
type PaymentFilters struct {
	Matricule string
	Mode      string
	DateFrom  string
	DateTo    string
}

// GetPayments retrieves payments, most recent first, optionally filtered.
func GetPayments(db *sql.DB, filters PaymentFilters) ([]models.Payment, error) {
	baseQuery := `SELECT ` + paymentColumns + ` FROM payments`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Matricule != "" {
		conditions = append(conditions, fmt.Sprintf("matricule = $%d", argIndex))
		args = append(args, filters.Matricule)
		argIndex++
	}
	if filters.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("mode = $%d", argIndex))
		args = append(args, filters.Mode)
		argIndex++
	}
	if filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("date_paiement >= $%d", argIndex))
		args = append(args, filters.DateFrom)
		argIndex++
	}
	if filters.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("date_paiement <= $%d", argIndex))
		args = append(args, filters.DateTo)
		argIndex++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY date_paiement DESC, created_at DESC"

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %v", err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment inserts a payment record.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (id, date_paiement, matricule, code_frais, montant_paye,
	          mode, num_piece, caissier, commentaires)
	          VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''))`

	_, err := db.Exec(query, p.ID, p.Date, p.Matricule, p.FeeCode, p.Amount,
		string(p.Mode), p.Reference, p.Cashier, p.Comment)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}
	return nil
}

// UpsertDailyCollection stores the end-of-day snapshot written by the
// scheduler, one row per calendar day.
func UpsertDailyCollection(db *sql.DB, day string, total int64, count int, settledPct float64) error {
	query := `INSERT INTO daily_collections (jour, total_encaisse, nombre_paiements, pourcentage_eleves_soldes)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (jour) DO UPDATE SET
	              total_encaisse = EXCLUDED.total_encaisse,
	              nombre_paiements = EXCLUDED.nombre_paiements,
	              pourcentage_eleves_soldes = EXCLUDED.pourcentage_eleves_soldes,
	              updated_at = NOW()`

	if _, err := db.Exec(query, day, total, count, settledPct); err != nil {
		return fmt.Errorf("failed to upsert daily collection: %v", err)
	}
	return nil
}
