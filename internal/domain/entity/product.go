package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nunca es negativo: el caso de uso de pedidos lo decrementa bajo bloqueo de fila
// y el esquema lleva un CHECK (stock >= 0) como última línea de defensa.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	PreviousPrice *decimal.Decimal // precio tachado en la tienda; nil si no aplica
	Stock         int64
	Image         string
	CategoryID    string
	CategoryName  string // denormalizado en lecturas con join; vacío en escrituras
	Active        bool
	Featured      bool
	CreatedAt     time.Time
}
