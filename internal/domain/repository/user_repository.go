package repository

import "github.com/tu-usuario/tienda-virtual/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.User, error)
	// FindByEmail busca sin importar el flag activo (para detectar duplicados en registro).
	FindByEmail(email string) (*entity.User, error)
	// FindActiveByEmail busca solo usuarios activos (login).
	FindActiveByEmail(email string) (*entity.User, error)
	// UpdateProfile actualiza nombre, teléfono y dirección del propio usuario.
	UpdateProfile(id, name, phone, address string) error
}
