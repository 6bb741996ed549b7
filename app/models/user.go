package models

// User represents an application user (administrator or cashier).
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username" validate:"required"`
	Role         UserRole `json:"role" validate:"required,oneof=admin caissier"`
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	PasswordHash string   `json:"-"`
}
