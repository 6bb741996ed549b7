package main

import (
	"flag"
	"log"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address (optional)")
	role := flag.String("role", string(models.RoleCashier), "role: admin or caissier")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" {
		log.Fatal("Usage: adduser -username <u> -password <p> -name <n> [-email <e>] [-role admin|caissier]")
	}
	if *role != string(models.RoleAdmin) && *role != string(models.RoleCashier) {
		log.Fatalf("Unknown role %q", *role)
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:     *username,
		Role:         models.UserRole(*role),
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("User %s (%s) created with id %s", user.Username, user.Role, user.ID)
}
