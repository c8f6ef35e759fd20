package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación PostgreSQL del repositorio de usuarios.
type UserRepository struct {
	db Querier
}

// NewUserRepository crea el repositorio sobre un pool o una transacción.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, nombre, email, contrasena, telefono, direccion, rol, activo, fecha_creacion`

// Create inserta un usuario nuevo.
func (r *UserRepository) Create(user *entity.User) error {
	ctx := context.Background()

	query := `
		INSERT INTO usuarios (id, nombre, email, contrasena, telefono, direccion, rol, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash,
		user.Phone, user.Address, user.Role, user.Active, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error al crear usuario: %w", err)
	}
	return nil
}

// GetByID busca un usuario por su id. Devuelve nil, nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	ctx := context.Background()

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByEmail busca por email sin importar el flag activo.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	ctx := context.Background()

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// FindActiveByEmail busca por email solo entre usuarios activos.
func (r *UserRepository) FindActiveByEmail(email string) (*entity.User, error) {
	ctx := context.Background()

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1 AND activo = true`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// UpdateProfile actualiza los datos editables del perfil propio.
func (r *UserRepository) UpdateProfile(id, name, phone, address string) error {
	ctx := context.Background()

	query := `
		UPDATE usuarios
		SET nombre = $2, telefono = $3, direccion = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, name, phone, address)
	if err != nil {
		return fmt.Errorf("error al actualizar perfil: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Phone, &u.Address, &u.Role, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}
	return &u, nil
}
