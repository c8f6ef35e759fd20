package importer

import (
	"context"

	"github.com/shopspring/decimal"
)

// FeedProduct producto tal como lo publica el feed externo.
type FeedProduct struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
}

// ProductFeed puerto del feed externo de datos de prueba (Fake Store API).
type ProductFeed interface {
	Categories(ctx context.Context) ([]string, error)
	Products(ctx context.Context) ([]FeedProduct, error)
}
