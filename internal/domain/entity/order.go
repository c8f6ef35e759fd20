package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	StatusPendiente  = "pendiente"
	StatusProcesando = "procesando"
	StatusEnviado    = "enviado"
	StatusEntregado  = "entregado"
	StatusCancelado  = "cancelado"
)

// transitions tabla de transiciones permitidas entre estados de pedido.
// entregado y cancelado son terminales.
var transitions = map[string][]string{
	StatusPendiente:  {StatusProcesando, StatusCancelado},
	StatusProcesando: {StatusEnviado, StatusCancelado},
	StatusEnviado:    {StatusEntregado},
	StatusEntregado:  {},
	StatusCancelado:  {},
}

// ValidStatus indica si s es un estado de pedido conocido.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition indica si el cambio de estado from -> to está permitido.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order representa un pedido. UserID es nil en pedidos de invitado; en ese caso
// GuestName/GuestSurname capturan la identidad del comprador.
// Total es la suma autoritativa de los detalles al momento de la creación y no se recalcula.
type Order struct {
	ID              string
	UserID          *string
	GuestName       string
	GuestSurname    string
	Total           decimal.Decimal
	ShippingAddress string
	ContactPhone    string
	Notes           string
	Status          string
	CreatedAt       time.Time

	// Denormalizados en lecturas (join con usuarios); vacíos en escrituras.
	CustomerName  string
	CustomerEmail string

	Items []OrderItem
}

// OrderItem detalle de pedido. UnitPrice es el precio capturado al crear el pedido;
// desacopla el historial de cambios de precio posteriores.
type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal

	// Denormalizados en lecturas (join con productos).
	ProductName  string
	ProductImage string
}
