package repository

import "github.com/tu-usuario/tienda-virtual/internal/domain/entity"

// ProductFilter filtros opcionales del listado público de productos.
type ProductFilter struct {
	CategoryID   string // id exacto; vacío = todas
	Search       string // subcadena sobre nombre o descripción
	FeaturedOnly bool   // true solo cuando el query param es literalmente "true"
}

// ProductRepository puerto de persistencia para productos.
// Las lecturas públicas (List, GetByID) exigen producto Y categoría activos:
// desactivar una categoría hace desaparecer sus productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si no hay fila visible (inexistente o categoría inactiva).
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por nombre exacto sin filtro de activo (idempotencia del importador).
	GetByName(name string) (*entity.Product, error)
	// List aplica los filtros y ordena por fecha de creación descendente.
	List(filter ProductFilter) ([]*entity.Product, error)
	// Update reemplaza todos los campos mutables; ErrNotFound si no hay fila.
	Update(product *entity.Product) error
	// Delete borrado físico; ErrNotFound si no hay fila.
	Delete(id string) error

	// GetForUpdate lee precio y stock bloqueando la fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción. nil, nil si el producto no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// DecrementStock resta qty unidades; el caller debe haber validado stock suficiente
	// bajo el bloqueo de GetForUpdate.
	DecrementStock(id string, qty int64) error
}
