package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// OrderUseCase creación transaccional de pedidos, listados, cambio de estado,
// borrado y recibo PDF.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil si el
// endpoint de recibos no está habilitado.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, receipts ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, receipts: receipts}
}

// Create crea un pedido de forma atómica contra el stock actual.
//
// Dentro de una sola transacción, por cada línea se lee la fila del producto con
// SELECT ... FOR UPDATE y se decrementa el stock de inmediato: la lectura
// bloqueada cierra la carrera entre pedidos concurrentes sobre el mismo
// producto, y decrementar en la misma pasada hace que líneas duplicadas del
// mismo producto vean el stock ya consumido por la línea anterior. Luego se
// inserta el pedido y los detalles con el precio capturado. Cualquier fallo
// revierte la transacción completa: nunca queda pedido sin detalles ni stock
// decrementado a medias.
//
// userID es nil para invitados; en ese caso nombre, apellido, dirección y
// teléfono son obligatorios (ErrInvalidInput si falta alguno).
func (uc *OrderUseCase) Create(ctx context.Context, userID *string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if len(in.Productos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Productos {
		if line.ProductoID == "" || line.Cantidad < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	if userID == nil {
		if isBlank(in.NombreInvitado) || isBlank(in.ApellidoInvitado) ||
			isBlank(in.DireccionEnvio) || isBlank(in.TelefonoContacto) {
			return nil, domain.ErrInvalidInput
		}
	}

	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		GuestName:       in.NombreInvitado,
		GuestSurname:    in.ApellidoInvitado,
		ShippingAddress: in.DireccionEnvio,
		ContactPhone:    in.TelefonoContacto,
		Notes:           in.Notas,
		Status:          entity.StatusPendiente,
		CreatedAt:       time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(in.Productos))

		for _, line := range in.Productos {
			// Bloquea la fila del producto hasta el commit
			product, err := productRepo.GetForUpdate(line.ProductoID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < line.Cantidad {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.DecrementStock(line.ProductoID, line.Cantidad); err != nil {
				return err
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(line.Cantidad))
			total = total.Add(subtotal)
			items = append(items, &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductoID,
				Quantity:  line.Cantidad,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		order.Total = total
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orderRepo.AddItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Mensaje: "Pedido creado exitosamente",
		ID:      order.ID,
		Total:   order.Total,
	}, nil
}

// ListMine pedidos del usuario autenticado, más recientes primero, con detalles.
func (uc *OrderUseCase) ListMine(userID string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListAll todos los pedidos (admin), incluidos los de invitado.
func (uc *OrderUseCase) ListAll() ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// UpdateStatus valida el estado contra la máquina de transiciones y lo aplica.
// ErrInvalidStatus para estados desconocidos, ErrInvalidTransition para saltos
// no permitidos, ErrNotFound si el pedido no existe.
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	current, err := uc.orderRepo.GetStatus(id)
	if err != nil {
		return err
	}
	if !entity.CanTransition(current, status) {
		return domain.ErrInvalidTransition
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

// Delete borrado físico del pedido. No restaura el stock decrementado.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.orderRepo.Delete(id)
}

// Receipt genera el recibo PDF del pedido. Solo el dueño del pedido o un admin
// pueden pedirlo; los pedidos de invitado solo son visibles para admin.
func (uc *OrderUseCase) Receipt(ctx context.Context, orderID, requesterID, requesterRole string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if requesterRole != entity.RoleAdmin {
		if order.UserID == nil || *order.UserID != requesterID {
			return nil, domain.ErrForbidden
		}
	}
	return uc.receipts.GenerateOrderReceipt(ctx, order)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductoID:     it.ProductID,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
			Subtotal:       it.Subtotal,
			ProductoNombre: it.ProductName,
			ProductoImagen: it.ProductImage,
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		UsuarioID:        o.UserID,
		UsuarioNombre:    o.CustomerName,
		UsuarioEmail:     o.CustomerEmail,
		NombreInvitado:   o.GuestName,
		ApellidoInvitado: o.GuestSurname,
		Total:            o.Total,
		DireccionEnvio:   o.ShippingAddress,
		TelefonoContacto: o.ContactPhone,
		Notas:            o.Notes,
		Estado:           o.Status,
		FechaCreacion:    o.CreatedAt,
		Detalles:         items,
	}
}
