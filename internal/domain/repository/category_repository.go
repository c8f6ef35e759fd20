package repository

import "github.com/tu-usuario/tienda-virtual/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// Las mutaciones sobre un id inexistente devuelven domain.ErrNotFound.
type CategoryRepository interface {
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	// SetActive cambia solo el flag activo sin tocar los demás campos.
	SetActive(id string, active bool) error
	Delete(id string) error
	// ListActive categorías visibles al público, ordenadas por nombre.
	ListActive() ([]*entity.Category, error)
	// ListAll todas, incluidas inactivas (consola admin).
	ListAll() ([]*entity.Category, error)
	// GetByName devuelve nil, nil si no existe (idempotencia del importador).
	GetByName(name string) (*entity.Category, error)
}
