package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	Port      string
	JWTSecret string
}

var AppConfig *Config

// Load reads .env if present and populates AppConfig from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "ges-ecolage-secret-key"),
	}
}

// InitDB opens the PostgreSQL connection and verifies it with a ping.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnv("DB_NAME", "gesecolage")
		sslmode := getEnv("DB_SSLMODE", "disable")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
		if password != "" {
			psqlInfo += " password=" + password
		}
		log.Printf("Connecting to PostgreSQL at %s:%s/%s", host, port, dbname)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetJWTSecret() []byte {
	if AppConfig == nil {
		Load()
	}
	return []byte(AppConfig.JWTSecret)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
