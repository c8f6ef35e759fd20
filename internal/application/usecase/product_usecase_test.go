package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// spyProductRepo captura el filtro que le llega desde el caso de uso.
type spyProductRepo struct {
	lastFilter repository.ProductFilter
	created    *entity.Product
}

func (r *spyProductRepo) Create(p *entity.Product) error { r.created = p; return nil }
func (r *spyProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *spyProductRepo) GetByName(string) (*entity.Product, error) { return nil, nil }
func (r *spyProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	r.lastFilter = f
	return nil, nil
}
func (r *spyProductRepo) Update(*entity.Product) error { return nil }
func (r *spyProductRepo) Delete(string) error { return nil }
func (r *spyProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *spyProductRepo) DecrementStock(string, int64) error { return nil }

// El filtro de destacados solo se activa con el valor literal "true".
func TestList_FiltroDestacadoLiteral(t *testing.T) {
	repo := &spyProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)

	cases := []struct {
		destacado string
		want      bool
	}{
		{"true", true},
		{"TRUE", false},
		{"1", false},
		{"false", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := uc.List("", "", tc.destacado)
		require.NoError(t, err)
		assert.Equal(t, tc.want, repo.lastFilter.FeaturedOnly,
			"destacado=%q debe producir FeaturedOnly=%v", tc.destacado, tc.want)
	}
}

func TestList_PasaFiltrosAlRepositorio(t *testing.T) {
	repo := &spyProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.List("cat-1", "teclado", "true")
	require.NoError(t, err)

	assert.Equal(t, "cat-1", repo.lastFilter.CategoryID)
	assert.Equal(t, "teclado", repo.lastFilter.Search)
	assert.True(t, repo.lastFilter.FeaturedOnly)
}

// Sin flag activo explícito el producto nace activo.
func TestCreate_ActivoPorDefecto(t *testing.T) {
	repo := &spyProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)

	id, err := uc.Create(dto.ProductRequest{
		Nombre:      "Teclado",
		Precio:      decimal.RequireFromString("99.90"),
		Stock:       10,
		CategoriaID: "cat-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NotNil(t, repo.created)
	assert.True(t, repo.created.Active)

	inactivo := false
	_, err = uc.Create(dto.ProductRequest{
		Nombre:      "Mouse",
		Precio:      decimal.RequireFromString("19.90"),
		CategoriaID: "cat-1",
		Activo:      &inactivo,
	})
	require.NoError(t, err)
	assert.False(t, repo.created.Active, "el flag explícito se respeta")
}
