package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// User representa un usuario de la tienda (cliente o administrador).
// Active es un apagado suave: bloquea el login sin borrar el historial de pedidos.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	Address      string
	Role         string // admin, cliente
	Active       bool
	CreatedAt    time.Time
}
