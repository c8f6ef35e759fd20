package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest una línea del pedido a crear.
type OrderLineRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int64  `json:"cantidad"`
}

// CreateOrderRequest entrada del POST /pedidos (invitado o autenticado).
// Para invitados (sin token) nombre, apellido, dirección y teléfono son obligatorios.
type CreateOrderRequest struct {
	Productos        []OrderLineRequest `json:"productos"`
	DireccionEnvio   string             `json:"direccion_envio"`
	TelefonoContacto string             `json:"telefono_contacto"`
	Notas            string             `json:"notas"`
	NombreInvitado   string             `json:"nombre_invitado"`
	ApellidoInvitado string             `json:"apellido_invitado"`
}

// CreateOrderResponse salida de la creación: id y total calculado en la transacción.
type CreateOrderResponse struct {
	Mensaje string          `json:"mensaje"`
	ID      string          `json:"id"`
	Total   decimal.Decimal `json:"total"`
}

// OrderItemResponse detalle con nombre e imagen del producto denormalizados.
type OrderItemResponse struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ProductoNombre string          `json:"producto_nombre"`
	ProductoImagen string          `json:"producto_imagen"`
}

// OrderResponse pedido con detalles anidados. Para pedidos de invitado
// usuario_id es null y nombre/apellido_invitado llevan la identidad capturada.
type OrderResponse struct {
	ID               string              `json:"id"`
	UsuarioID        *string             `json:"usuario_id"`
	UsuarioNombre    string              `json:"usuario_nombre,omitempty"`
	UsuarioEmail     string              `json:"usuario_email,omitempty"`
	NombreInvitado   string              `json:"nombre_invitado,omitempty"`
	ApellidoInvitado string              `json:"apellido_invitado,omitempty"`
	Total            decimal.Decimal     `json:"total"`
	DireccionEnvio   string              `json:"direccion_envio"`
	TelefonoContacto string              `json:"telefono_contacto"`
	Notas            string              `json:"notas"`
	Estado           string              `json:"estado"`
	FechaCreacion    time.Time           `json:"fecha_creacion"`
	Detalles         []OrderItemResponse `json:"detalles"`
}

// UpdateOrderStatusRequest entrada del PUT /pedidos/:id/estado.
type UpdateOrderStatusRequest struct {
	Estado string `json:"estado"`
}
