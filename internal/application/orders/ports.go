package orders

import (
	"context"

	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la creación de pedidos:
// o se confirma todo (pedido, detalles y decrementos de stock) o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptGenerator genera el recibo PDF de un pedido confirmado.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
