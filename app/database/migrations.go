package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing. Statements are idempotent so
// the application can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'caissier',
			name TEXT NOT NULL,
			email TEXT,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			matricule TEXT PRIMARY KEY,
			nom TEXT NOT NULL,
			prenom TEXT NOT NULL,
			sexe TEXT NOT NULL,
			date_naissance DATE NOT NULL,
			classe TEXT NOT NULL,
			contact_parent TEXT NOT NULL,
			email_parent TEXT,
			date_inscription DATE NOT NULL,
			statut TEXT NOT NULL DEFAULT 'actif',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			code TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			montant BIGINT NOT NULL,
			classe TEXT,
			obligatoire BOOLEAN NOT NULL DEFAULT false,
			periodicite TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS class_fees (
			classe TEXT NOT NULL,
			code_frais TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (classe, code_frais)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			date_paiement DATE NOT NULL,
			matricule TEXT NOT NULL,
			code_frais TEXT NOT NULL,
			montant_paye BIGINT NOT NULL,
			mode TEXT NOT NULL,
			num_piece TEXT,
			caissier TEXT NOT NULL,
			commentaires TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_matricule ON payments (matricule)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (date_paiement)`,
		`CREATE TABLE IF NOT EXISTS daily_collections (
			jour DATE PRIMARY KEY,
			total_encaisse BIGINT NOT NULL,
			nombre_paiements INTEGER NOT NULL,
			pourcentage_eleves_soldes DOUBLE PRECISION NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
