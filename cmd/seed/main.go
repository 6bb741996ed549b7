package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

// Seeds the database with the sample data set used for demos: two users,
// four students, the standard fee definitions and a few payments.
func main() {
	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	users := []models.User{
		{Username: "admin", Role: models.RoleAdmin, Name: "Administrateur Principal", Email: "admin@gesecolage.com", PasswordHash: hash},
		{Username: "caissier1", Role: models.RoleCashier, Name: "Marie Dupont", Email: "marie@gesecolage.com", PasswordHash: hash},
	}
	for i := range users {
		if err := database.CreateUser(db, &users[i]); err != nil {
			log.Printf("Skipping user %s: %v", users[i].Username, err)
		}
	}

	students := []models.Student{
		{Matricule: "ETU001", LastName: "KOUAME", FirstName: "Jean", Sex: models.Male, BirthDate: "2005-03-15", Class: "6ème A", GuardianPhone: "+225 07 12 34 56 78", GuardianEmail: "kouame.parent@email.com", EnrollmentDate: "2024-09-01", Status: models.StudentActive},
		{Matricule: "ETU002", LastName: "TRAORE", FirstName: "Fatou", Sex: models.Female, BirthDate: "2004-07-22", Class: "5ème B", GuardianPhone: "+225 05 98 76 54 32", GuardianEmail: "traore.parent@email.com", EnrollmentDate: "2024-09-01", Status: models.StudentActive},
		{Matricule: "ETU003", LastName: "KONE", FirstName: "Amadou", Sex: models.Male, BirthDate: "2006-11-08", Class: "6ème A", GuardianPhone: "+225 01 23 45 67 89", GuardianEmail: "kone.parent@email.com", EnrollmentDate: "2024-09-01", Status: models.StudentActive},
		{Matricule: "ETU004", LastName: "OUATTARA", FirstName: "Aïcha", Sex: models.Female, BirthDate: "2003-12-03", Class: "4ème C", GuardianPhone: "+225 07 11 22 33 44", GuardianEmail: "ouattara.parent@email.com", EnrollmentDate: "2024-09-01", Status: models.StudentActive},
	}
	for i := range students {
		if err := database.CreateStudent(db, &students[i]); err != nil {
			log.Printf("Skipping student %s: %v", students[i].Matricule, err)
		}
	}

	fees := []models.Fee{
		{Code: "SCOL001", Description: "Frais de scolarité - Trimestre 1", Amount: 150000, Mandatory: true},
		{Code: "SCOL002", Description: "Frais de scolarité - Trimestre 2", Amount: 150000, Mandatory: true},
		{Code: "SCOL003", Description: "Frais de scolarité - Trimestre 3", Amount: 150000, Mandatory: true},
		{Code: "INSC001", Description: "Frais d'inscription", Amount: 25000, Mandatory: true},
		{Code: "FOUR001", Description: "Fournitures scolaires", Amount: 35000, Mandatory: false},
		{Code: "CANT001", Description: "Cantine - Trimestre 1", Amount: 45000, Mandatory: false},
	}
	for i := range fees {
		if err := database.CreateFee(db, &fees[i]); err != nil {
			log.Printf("Skipping fee %s: %v", fees[i].Code, err)
		}
	}

	payments := []models.Payment{
		{Date: "2024-01-15", Matricule: "ETU001", FeeCode: "SCOL001", Amount: 150000, Mode: models.ModeCash, Cashier: "caissier1", Comment: "Paiement complet trimestre 1"},
		{Date: "2024-01-16", Matricule: "ETU001", FeeCode: "INSC001", Amount: 25000, Mode: models.ModeCash, Cashier: "caissier1"},
		{Date: "2024-01-20", Matricule: "ETU002", FeeCode: "SCOL001", Amount: 75000, Mode: models.ModeMobileMoney, Reference: "MOB123456", Cashier: "caissier1", Comment: "Paiement partiel - reste 75000"},
		{Date: "2024-01-22", Matricule: "ETU003", FeeCode: "INSC001", Amount: 25000, Mode: models.ModeCheck, Reference: "CHQ789012", Cashier: "admin"},
	}

	existing, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		log.Fatal("Failed to check payments:", err)
	}
	if len(existing) > 0 {
		log.Printf("Payments already present (%d), not seeding more", len(existing))
		return
	}
	for i := range payments {
		payments[i].ID = uuid.New().String()
		if err := database.CreatePayment(db, &payments[i]); err != nil {
			log.Printf("Skipping payment for %s: %v", payments[i].Matricule, err)
		}
	}

	log.Println("Sample data seeded")
}
