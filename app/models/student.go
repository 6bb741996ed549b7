package models

// Student represents a registered student. The matricule is the unique key;
// the class is a free-text grouping, not a foreign key.
type Student struct {
	Matricule      string        `json:"matricule" validate:"required"`
	LastName       string        `json:"nom" validate:"required"`
	FirstName      string        `json:"prenom" validate:"required"`
	Sex            Sex           `json:"sexe" validate:"required,oneof=M F"`
	BirthDate      string        `json:"date_naissance" validate:"required"`
	Class          string        `json:"classe" validate:"required"`
	GuardianPhone  string        `json:"contact_parent" validate:"required"`
	GuardianEmail  string        `json:"email_parent,omitempty" validate:"omitempty,email"`
	EnrollmentDate string        `json:"date_inscription" validate:"required"`
	Status         StudentStatus `json:"statut" validate:"required,oneof=actif inactif suspendu"`
}
