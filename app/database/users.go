package database

import (
	"database/sql"
	"fmt"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// GetUserByUsername retrieves one user by username. Returns sql.ErrNoRows
// when the user does not exist.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	query := `SELECT id, username, role, name, COALESCE(email, ''), password_hash
	          FROM users WHERE username = $1`

	user := &models.User{}
	var role string
	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &role, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	user.Role = models.UserRole(role)
	return user, nil
}

// CreateUser inserts a user with an already-hashed password.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, role, name, email, password_hash)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	          RETURNING id`

	err := db.QueryRow(query, user.Username, string(user.Role), user.Name, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, passwordHash string) error {
	_, err := db.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}
	return nil
}
