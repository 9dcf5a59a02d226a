package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleCorretor = "corretor"
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, corretor
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
