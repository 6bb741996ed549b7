package database

import (
	"database/sql"
	"fmt"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// GetFees retrieves all fee definitions ordered by code.
func GetFees(db *sql.DB) ([]models.Fee, error) {
	query := `SELECT code, description, montant, COALESCE(classe, ''), obligatoire, COALESCE(periodicite, '')
	          FROM fees ORDER BY code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fees: %v", err)
	}
	defer rows.Close()

	fees := make([]models.Fee, 0)
	for rows.Next() {
		var f models.Fee
		if err := rows.Scan(&f.Code, &f.Description, &f.Amount, &f.Class, &f.Mandatory, &f.Periodicity); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// GetClassFees retrieves all class to fee association rows.
func GetClassFees(db *sql.DB) ([]models.ClassFee, error) {
	rows, err := db.Query(`SELECT classe, code_frais FROM class_fees ORDER BY classe, code_frais`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class fees: %v", err)
	}
	defer rows.Close()

	classFees := make([]models.ClassFee, 0)
	for rows.Next() {
		var cf models.ClassFee
		if err := rows.Scan(&cf.Class, &cf.FeeCode); err != nil {
			return nil, err
		}
		classFees = append(classFees, cf)
	}
	return classFees, rows.Err()
}

// CreateFee inserts a fee definition.
func CreateFee(db *sql.DB, f *models.Fee) error {
	query := `INSERT INTO fees (code, description, montant, classe, obligatoire, periodicite)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))`

	_, err := db.Exec(query, f.Code, f.Description, f.Amount, f.Class, f.Mandatory, f.Periodicity)
	if err != nil {
		return fmt.Errorf("failed to insert fee: %v", err)
	}
	return nil
}

// UpdateFee overwrites a fee definition identified by code.
func UpdateFee(db *sql.DB, code string, f *models.Fee) error {
	query := `UPDATE fees SET description = $1, montant = $2, classe = NULLIF($3, ''),
	          obligatoire = $4, periodicite = NULLIF($5, ''), updated_at = NOW()
	          WHERE code = $6`

	res, err := db.Exec(query, f.Description, f.Amount, f.Class, f.Mandatory, f.Periodicity, code)
	if err != nil {
		return fmt.Errorf("failed to update fee: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteFee removes a fee definition and its class associations.
func DeleteFee(db *sql.DB, code string) error {
	if _, err := db.Exec(`DELETE FROM class_fees WHERE code_frais = $1`, code); err != nil {
		return fmt.Errorf("failed to delete fee associations: %v", err)
	}
	res, err := db.Exec(`DELETE FROM fees WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete fee: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AssociateFeeToClass links an optional fee to a class. Inserting the same
// link twice is a no-op.
func AssociateFeeToClass(db *sql.DB, class, feeCode string) error {
	query := `INSERT INTO class_fees (classe, code_frais) VALUES ($1, $2)
	          ON CONFLICT (classe, code_frais) DO NOTHING`

	if _, err := db.Exec(query, class, feeCode); err != nil {
		return fmt.Errorf("failed to associate fee to class: %v", err)
	}
	return nil
}

// RemoveClassFeeAssociation unlinks a fee from a class.
func RemoveClassFeeAssociation(db *sql.DB, class, feeCode string) error {
	res, err := db.Exec(`DELETE FROM class_fees WHERE classe = $1 AND code_frais = $2`, class, feeCode)
	if err != nil {
		return fmt.Errorf("failed to remove class fee association: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
