package repository

import "github.com/tu-usuario/tienda-virtual/internal/domain/entity"

// OrderRepository puerto de persistencia para pedidos y sus detalles.
// Order y OrderItem se crean juntos dentro de una transacción (TxRunner);
// fuera de ella los detalles nunca se crean ni mutan.
type OrderRepository interface {
	Create(order *entity.Order) error
	AddItem(item *entity.OrderItem) error
	// GetByID devuelve el pedido con sus detalles; nil, nil si no existe.
	GetByID(id string) (*entity.Order, error)
	// GetStatus devuelve el estado actual; domain.ErrNotFound si no existe.
	GetStatus(id string) (string, error)
	// ListByUser pedidos del cliente, más recientes primero, con detalles anidados.
	ListByUser(userID string) ([]*entity.Order, error)
	// ListAll todos los pedidos (admin); LEFT JOIN con usuarios para que los
	// pedidos de invitado aparezcan con sus campos capturados.
	ListAll() ([]*entity.Order, error)
	// UpdateStatus sobrescribe el estado; ErrNotFound si no hay fila.
	UpdateStatus(id, status string) error
	// Delete borrado físico (los detalles caen en cascada); no restaura stock.
	Delete(id string) error
}
