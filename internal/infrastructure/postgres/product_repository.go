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

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación PostgreSQL del repositorio de productos.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea el repositorio sobre un pool o una transacción.
func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserta un producto nuevo.
func (r *ProductRepository) Create(product *entity.Product) error {
	ctx := context.Background()

	query := `
		INSERT INTO productos (id, nombre, descripcion, precio, precio_anterior, stock,
			imagen, categoria_id, activo, destacado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.PreviousPrice,
		product.Stock, product.Image, product.CategoryID, product.Active, product.Featured,
		product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("error al crear producto: %w", err)
	}
	return nil
}

// GetByID busca un producto visible al público: producto y categoría activos.
// Devuelve nil, nil si no hay fila visible.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.nombre, p.descripcion, p.precio, p.precio_anterior, p.stock,
			p.imagen, p.categoria_id, c.nombre, p.activo, p.destacado, p.fecha_creacion
		FROM productos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE p.id = $1 AND p.activo = true AND c.activo = true`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.PreviousPrice, &p.Stock,
		&p.Image, &p.CategoryID, &p.CategoryName, &p.Active, &p.Featured, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar producto: %w", err)
	}
	return &p, nil
}

// GetByName busca por nombre exacto sin filtro de activo.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, nombre, descripcion, precio, precio_anterior, stock,
			imagen, categoria_id, activo, destacado, fecha_creacion
		FROM productos WHERE nombre = $1`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, name).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.PreviousPrice, &p.Stock,
		&p.Image, &p.CategoryID, &p.Active, &p.Featured, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar producto: %w", err)
	}
	return &p, nil
}

// List aplica los filtros del catálogo público. El SQL se arma dinámicamente
// con parámetros posicionales según los filtros presentes.
func (r *ProductRepository) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.nombre, p.descripcion, p.precio, p.precio_anterior, p.stock,
			p.imagen, p.categoria_id, c.nombre, p.activo, p.destacado, p.fecha_creacion
		FROM productos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE p.activo = true AND c.activo = true`

	var args []any
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND p.categoria_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (p.nombre ILIKE $%d OR p.descripcion ILIKE $%d)", len(args), len(args))
	}
	if filter.FeaturedOnly {
		query += " AND p.destacado = true"
	}
	query += " ORDER BY p.fecha_creacion DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.PreviousPrice, &p.Stock,
			&p.Image, &p.CategoryID, &p.CategoryName, &p.Active, &p.Featured, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al leer producto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Update reemplaza todos los campos mutables del producto.
func (r *ProductRepository) Update(product *entity.Product) error {
	ctx := context.Background()

	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, precio_anterior = $5,
			stock = $6, imagen = $7, categoria_id = $8, activo = $9, destacado = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.PreviousPrice,
		product.Stock, product.Image, product.CategoryID, product.Active, product.Featured,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("error al actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el producto físicamente.
func (r *ProductRepository) Delete(id string) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate lee precio y stock bloqueando la fila hasta el fin de la transacción.
func (r *ProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	ctx := context.Background()

	query := `SELECT id, nombre, precio, stock FROM productos WHERE id = $1 FOR UPDATE`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al bloquear producto: %w", err)
	}
	return &p, nil
}

// DecrementStock resta qty unidades. El CHECK (stock >= 0) del esquema rechaza
// cualquier decremento que el caller no haya validado bajo bloqueo.
func (r *ProductRepository) DecrementStock(id string, qty int64) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `UPDATE productos SET stock = stock - $2 WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("error al descontar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
