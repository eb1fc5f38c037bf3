package entity

import "time"

// RoleCliente papel padrão de uma conta de cliente.
const RoleCliente = "cliente"

// Client representa a conta de um cliente final.
// Email é guardado em minúsculas (comparação case-insensitive no login).
type Client struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca o password em texto após persistir
	Role         string
	CreatedAt    time.Time
}
