package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// ProductUseCase CRUD y lecturas públicas del catálogo de productos.
// El stock solo se decrementa desde el caso de uso de pedidos; aquí el admin
// lo fija de forma absoluta al crear o reemplazar.
type ProductUseCase struct {
	repo     repository.ProductRepository
	uploader ImageUploader
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, uploader ImageUploader) *ProductUseCase {
	return &ProductUseCase{repo: repo, uploader: uploader}
}

// List catálogo público con filtros opcionales. destacado solo filtra cuando
// llega literalmente "true"; cualquier otro valor se ignora.
func (uc *ProductUseCase) List(categoria, busqueda, destacado string) ([]dto.ProductResponse, error) {
	filter := repository.ProductFilter{
		CategoryID:   categoria,
		Search:       busqueda,
		FeaturedOnly: destacado == "true",
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve nil, nil si el producto no es visible
// (no existe, está inactivo o su categoría está inactiva).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto; activo por defecto salvo que el request diga lo contrario.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (string, error) {
	active := true
	if in.Activo != nil {
		active = *in.Activo
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Nombre,
		Description:   in.Descripcion,
		Price:         in.Precio,
		PreviousPrice: in.PrecioAnterior,
		Stock:         in.Stock,
		Image:         in.Imagen,
		CategoryID:    in.CategoriaID,
		Active:        active,
		Featured:      in.Destacado,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// Update reemplaza todos los campos mutables (sin patch parcial).
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) error {
	active := true
	if in.Activo != nil {
		active = *in.Activo
	}
	return uc.repo.Update(&entity.Product{
		ID:            id,
		Name:          in.Nombre,
		Description:   in.Descripcion,
		Price:         in.Precio,
		PreviousPrice: in.PrecioAnterior,
		Stock:         in.Stock,
		Image:         in.Imagen,
		CategoryID:    in.CategoriaID,
		Active:        active,
		Featured:      in.Destacado,
	})
}

// Delete borrado físico. Los detalles de pedidos históricos conservan su
// snapshot de precio, pero pierden nombre e imagen del producto en el join.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// UploadImage sube la imagen al servicio de alojamiento y devuelve la URL pública.
// No asocia la imagen a ningún producto; el admin la referencia después en el campo imagen.
func (uc *ProductUseCase) UploadImage(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", domain.ErrInvalidInput
	}
	url, err := uc.uploader.Upload(ctx, source)
	if err != nil {
		return "", err
	}
	return url, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Nombre:          p.Name,
		Descripcion:     p.Description,
		Precio:          p.Price,
		PrecioAnterior:  p.PreviousPrice,
		Stock:           p.Stock,
		Imagen:          p.Image,
		CategoriaID:     p.CategoryID,
		CategoriaNombre: p.CategoryName,
		Activo:          p.Active,
		Destacado:       p.Featured,
		FechaCreacion:   p.CreatedAt,
	}
}
