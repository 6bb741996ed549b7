package database

import (
	"database/sql"
	"fmt"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

const studentColumns = `matricule, nom, prenom, sexe,
	to_char(date_naissance, 'YYYY-MM-DD'),
	classe, contact_parent, COALESCE(email_parent, ''),
	to_char(date_inscription, 'YYYY-MM-DD'), statut`

func scanStudent(rows *sql.Rows) (models.Student, error) {
	var s models.Student
	var sex, status string
	err := rows.Scan(
		&s.Matricule, &s.LastName, &s.FirstName, &sex,
		&s.BirthDate, &s.Class, &s.GuardianPhone, &s.GuardianEmail,
		&s.EnrollmentDate, &status,
	)
	s.Sex = models.Sex(sex)
	s.Status = models.StudentStatus(status)
	return s, err
}

// GetStudents retrieves all students ordered by matricule.
func GetStudents(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students ORDER BY matricule`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %v", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// SearchStudents retrieves students whose matricule, name or guardian contact
// matches the query, ordered by matricule.
func SearchStudents(db *sql.DB, search string) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
	          WHERE matricule ILIKE $1 OR nom ILIKE $1 OR prenom ILIKE $1 OR contact_parent LIKE $1
	          ORDER BY matricule`

	rows, err := db.Query(query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %v", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByMatricule retrieves one student. Returns sql.ErrNoRows when the
// matricule is unknown.
func GetStudentByMatricule(db *sql.DB, matricule string) (*models.Student, error) {
	rows, err := db.Query(`SELECT `+studentColumns+` FROM students WHERE matricule = $1`, matricule)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	s, err := scanStudent(rows)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateStudent inserts a student.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (matricule, nom, prenom, sexe, date_naissance, classe,
	          contact_parent, email_parent, date_inscription, statut)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`

	_, err := db.Exec(query, s.Matricule, s.LastName, s.FirstName, string(s.Sex), s.BirthDate,
		s.Class, s.GuardianPhone, s.GuardianEmail, s.EnrollmentDate, string(s.Status))
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}
	return nil
}

// UpdateStudent overwrites a student record. Edits are not versioned.
func UpdateStudent(db *sql.DB, matricule string, s *models.Student) error {
	query := `UPDATE students SET nom = $1, prenom = $2, sexe = $3, date_naissance = $4,
	          classe = $5, contact_parent = $6, email_parent = NULLIF($7, ''),
	          date_inscription = $8, statut = $9, updated_at = NOW()
	          WHERE matricule = $10`

	res, err := db.Exec(query, s.LastName, s.FirstName, string(s.Sex), s.BirthDate,
		s.Class, s.GuardianPhone, s.GuardianEmail, s.EnrollmentDate, string(s.Status), matricule)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent removes a student. Payments referencing the matricule are
// kept: the engine tolerates payments for removed students.
func DeleteStudent(db *sql.DB, matricule string) error {
	res, err := db.Exec(`DELETE FROM students WHERE matricule = $1`, matricule)
	if err != nil {
		return fmt.Errorf("failed to delete student: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
