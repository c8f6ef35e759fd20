package importer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

type fakeCategoryRepo struct {
	byName map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.byName[c.Name] = c; return nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) SetActive(string, bool) error { return nil }
func (r *fakeCategoryRepo) Delete(string) error { return nil }
func (r *fakeCategoryRepo) ListActive() ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) ListAll() ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.byName[name], nil
}

type fakeProductRepo struct {
	byName map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.byName[p.Name] = p; return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.byName[name], nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error { return nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) DecrementStock(string, int64) error { return nil }

type fakeFeed struct {
	categories []string
	products   []FeedProduct
}

func (f *fakeFeed) Categories(context.Context) ([]string, error) { return f.categories, nil }
func (f *fakeFeed) Products(context.Context) ([]FeedProduct, error) { return f.products, nil }

func newTestImporter(feed ProductFeed) (*ImportUseCase, *fakeCategoryRepo, *fakeProductRepo) {
	catRepo := &fakeCategoryRepo{byName: make(map[string]*entity.Category)}
	prodRepo := &fakeProductRepo{byName: make(map[string]*entity.Product)}
	uc := NewImportUseCase(catRepo, prodRepo, feed)
	uc.randStock = func() int64 { return 42 } // determinista en tests
	return uc, catRepo, prodRepo
}

func testFeed() *fakeFeed {
	return &fakeFeed{
		categories: []string{"electronics", "men's clothing", "garden"},
		products: []FeedProduct{
			{Title: "Teclado mecánico", Description: "RGB", Price: decimal.RequireFromString("99.90"), Category: "electronics", Image: "http://img/1"},
			{Title: "Camisa de lino", Description: "Talla M", Price: decimal.RequireFromString("25.00"), Category: "men's clothing", Image: "http://img/2"},
		},
	}
}

func TestRun_ImportaTraduciendoCategorias(t *testing.T) {
	uc, catRepo, prodRepo := newTestImporter(testFeed())

	out, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.ProductosImportados)
	assert.Equal(t, 0, out.ProductosOmitidos)
	assert.Equal(t, 3, out.CategoriasCreadas)

	// Las categorías conocidas se traducen; las desconocidas pasan tal cual
	assert.NotNil(t, catRepo.byName["Electrónica"])
	assert.NotNil(t, catRepo.byName["Ropa de Hombre"])
	assert.NotNil(t, catRepo.byName["garden"])
	assert.Nil(t, catRepo.byName["electronics"], "el nombre original no debe persistirse")

	// El producto queda en la categoría local correcta, activo y con stock inyectado
	teclado := prodRepo.byName["Teclado mecánico"]
	require.NotNil(t, teclado)
	assert.Equal(t, catRepo.byName["Electrónica"].ID, teclado.CategoryID)
	assert.EqualValues(t, 42, teclado.Stock)
	assert.True(t, teclado.Active)
	assert.False(t, teclado.Featured)
}

// Correr dos veces con el mismo feed no duplica nada.
func TestRun_Idempotente(t *testing.T) {
	uc, catRepo, prodRepo := newTestImporter(testFeed())

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	out, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.ProductosImportados, "la segunda pasada no importa nada")
	assert.Equal(t, 2, out.ProductosOmitidos, "todo se reporta como omitido")
	assert.Len(t, catRepo.byName, 3, "las categorías no se duplican")
	assert.Len(t, prodRepo.byName, 2, "los productos no se duplican")
}

func TestRun_RespetaCategoriasExistentes(t *testing.T) {
	uc, catRepo, _ := newTestImporter(testFeed())

	existing := &entity.Category{ID: "cat-previa", Name: "Electrónica", Active: true}
	catRepo.byName["Electrónica"] = existing

	out, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Same(t, existing, catRepo.byName["Electrónica"], "no se reemplaza la categoría existente")
	assert.Equal(t, 3, out.CategoriasCreadas, "el contador cuenta categorías tocadas, no solo nuevas")
}
