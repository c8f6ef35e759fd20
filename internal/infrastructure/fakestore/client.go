package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-virtual/internal/application/importer"
)

// Verificar en tiempo de compilación que Client implementa ProductFeed.
var _ importer.ProductFeed = (*Client)(nil)

// Client adaptador de la Fake Store API (https://fakestoreapi.com).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type feedProduct struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// Categories devuelve los nombres de categoría tal como los publica el feed.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Products devuelve el catálogo completo del feed.
func (c *Client) Products(ctx context.Context) ([]importer.FeedProduct, error) {
	var raw []feedProduct
	if err := c.getJSON(ctx, "/products", &raw); err != nil {
		return nil, err
	}

	products := make([]importer.FeedProduct, 0, len(raw))
	for _, p := range raw {
		products = append(products, importer.FeedProduct{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			Category:    p.Category,
		})
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fakestore: crear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fakestore: consultar %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fakestore: %s respondió %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fakestore: leer respuesta: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("fakestore: respuesta inválida: %w", err)
	}
	return nil
}
