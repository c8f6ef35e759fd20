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

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementación PostgreSQL del repositorio de categorías.
type CategoryRepository struct {
	db Querier
}

// NewCategoryRepository crea el repositorio sobre un pool o una transacción.
func NewCategoryRepository(db Querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserta una categoría nueva.
func (r *CategoryRepository) Create(category *entity.Category) error {
	ctx := context.Background()

	query := `
		INSERT INTO categorias (id, nombre, descripcion, imagen, activo)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Image, category.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("error al crear categoría: %w", err)
	}
	return nil
}

// Update reemplaza los campos de la categoría.
func (r *CategoryRepository) Update(category *entity.Category) error {
	ctx := context.Background()

	query := `
		UPDATE categorias
		SET nombre = $2, descripcion = $3, imagen = $4, activo = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Image, category.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("error al actualizar categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive cambia solo el flag activo.
func (r *CategoryRepository) SetActive(id string, active bool) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `UPDATE categorias SET activo = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("error al cambiar estado de categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la categoría físicamente.
func (r *CategoryRepository) Delete(id string) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista las categorías visibles al público ordenadas por nombre.
func (r *CategoryRepository) ListActive() ([]*entity.Category, error) {
	return r.list(`SELECT id, nombre, descripcion, imagen, activo FROM categorias WHERE activo = true ORDER BY nombre`)
}

// ListAll lista todas las categorías, incluidas las inactivas.
func (r *CategoryRepository) ListAll() ([]*entity.Category, error) {
	return r.list(`SELECT id, nombre, descripcion, imagen, activo FROM categorias ORDER BY nombre`)
}

// GetByName busca por nombre exacto. Devuelve nil, nil si no existe.
func (r *CategoryRepository) GetByName(name string) (*entity.Category, error) {
	ctx := context.Background()

	query := `SELECT id, nombre, descripcion, imagen, activo FROM categorias WHERE nombre = $1`

	var c entity.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar categoría: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) list(query string) ([]*entity.Category, error) {
	ctx := context.Background()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al listar categorías: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Active); err != nil {
			return nil, fmt.Errorf("error al leer categoría: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
