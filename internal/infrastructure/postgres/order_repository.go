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

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación PostgreSQL del repositorio de pedidos.
type OrderRepository struct {
	db Querier
}

// NewOrderRepository crea el repositorio sobre un pool o una transacción.
func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserta la cabecera del pedido.
func (r *OrderRepository) Create(order *entity.Order) error {
	ctx := context.Background()

	query := `
		INSERT INTO pedidos (id, usuario_id, nombre_invitado, apellido_invitado, total,
			direccion_envio, telefono_contacto, notas, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		order.ID, order.UserID, order.GuestName, order.GuestSurname, order.Total,
		order.ShippingAddress, order.ContactPhone, order.Notes, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error al crear pedido: %w", err)
	}
	return nil
}

// AddItem inserta un detalle del pedido.
func (r *OrderRepository) AddItem(item *entity.OrderItem) error {
	ctx := context.Background()

	query := `
		INSERT INTO detalles_pedido (pedido_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("error al crear detalle de pedido: %w", err)
	}
	return nil
}

const orderColumns = `
	p.id, p.usuario_id, p.nombre_invitado, p.apellido_invitado, p.total,
	p.direccion_envio, p.telefono_contacto, p.notas, p.estado, p.fecha_creacion,
	COALESCE(u.nombre, ''), COALESCE(u.email, '')`

// GetByID devuelve el pedido con sus detalles anidados. nil, nil si no existe.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()

	query := `
		SELECT ` + orderColumns + `
		FROM pedidos p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		WHERE p.id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar pedido: %w", err)
	}
	if err := r.loadItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetStatus devuelve el estado actual del pedido.
func (r *OrderRepository) GetStatus(id string) (string, error) {
	ctx := context.Background()

	var status string
	err := r.db.QueryRow(ctx, `SELECT estado FROM pedidos WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("error al leer estado de pedido: %w", err)
	}
	return status, nil
}

// ListByUser lista los pedidos del cliente, más recientes primero.
func (r *OrderRepository) ListByUser(userID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM pedidos p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		WHERE p.usuario_id = $1
		ORDER BY p.fecha_creacion DESC`

	return r.listOrders(query, userID)
}

// ListAll lista todos los pedidos (admin). El LEFT JOIN mantiene visibles los
// pedidos de invitado, que no tienen usuario asociado.
func (r *OrderRepository) ListAll() ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM pedidos p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		ORDER BY p.fecha_creacion DESC`

	return r.listOrders(query)
}

// UpdateStatus sobrescribe el estado del pedido.
func (r *OrderRepository) UpdateStatus(id, status string) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `UPDATE pedidos SET estado = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el pedido; los detalles caen por el ON DELETE CASCADE del esquema.
func (r *OrderRepository) Delete(id string) error {
	ctx := context.Background()

	tag, err := r.db.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) listOrders(query string, args ...any) ([]*entity.Order, error) {
	ctx := context.Background()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer pedido: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := r.loadItems(order); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// loadItems carga los detalles del pedido. El LEFT JOIN con productos conserva
// los detalles de productos ya borrados del catálogo, con nombre e imagen vacíos.
func (r *OrderRepository) loadItems(order *entity.Order) error {
	ctx := context.Background()

	query := `
		SELECT d.pedido_id, d.producto_id, d.cantidad, d.precio_unitario, d.subtotal,
			COALESCE(pr.nombre, ''), COALESCE(pr.imagen, '')
		FROM detalles_pedido d
		LEFT JOIN productos pr ON d.producto_id = pr.id
		WHERE d.pedido_id = $1`

	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("error al listar detalles de pedido: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal,
			&item.ProductName, &item.ProductImage,
		)
		if err != nil {
			return fmt.Errorf("error al leer detalle de pedido: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.GuestName, &o.GuestSurname, &o.Total,
		&o.ShippingAddress, &o.ContactPhone, &o.Notes, &o.Status, &o.CreatedAt,
		&o.CustomerName, &o.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
