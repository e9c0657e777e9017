package domain

import "time"

// Roles conhecidas. O campo role aceita texto livre; estas são as usadas na autorização.
const (
	RoleUser     = "USER"
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERADOR"
)

// User representa a entidade do usuário no sistema.
// @Description Usuário da plataforma.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Name         string    `json:"nome" db:"name" example:"Maria Souza"`
	Email        string    `json:"email" db:"email" example:"maria@remoteready.com"`
	PasswordHash string    `json:"-" db:"password_hash"` // Oculta o hash da senha no JSON de resposta
	Role         string    `json:"role" db:"role" example:"USER"`
	CreatedAt    time.Time `json:"dataCriacao" db:"created_at"`
}

// UserRequest é o payload de criação e atualização de usuário.
type UserRequest struct {
	Name     string `json:"nome" validate:"required,max=100" example:"Maria Souza"`
	Email    string `json:"email" validate:"required,email,max=120" example:"maria@remoteready.com"`
	Password string `json:"senha" validate:"required,bcryptmax" example:"s3nh@Forte"`
	Role     string `json:"role" validate:"omitempty,max=20" example:"USER"`
}

// LoginRequest é o payload de autenticação.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"maria@remoteready.com"`
	Password string `json:"senha" validate:"required" example:"s3nh@Forte"`
}

// LoginResult é a resposta de uma autenticação bem-sucedida.
type LoginResult struct {
	User  string `json:"user" example:"Maria Souza"`
	Email string `json:"email" example:"maria@remoteready.com"`
	Role  string `json:"tipoUsuario" example:"USER"`
	Token string `json:"token"`
}
