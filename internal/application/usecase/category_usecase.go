package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Las lecturas públicas ven solo las activas;
// la consola admin ve todas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// ListActive categorías visibles al público, ordenadas por nombre.
func (uc *CategoryUseCase) ListActive() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListAll todas las categorías, incluidas inactivas (admin).
func (uc *CategoryUseCase) ListAll() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Create crea una categoría activa.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (string, error) {
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Nombre,
		Description: in.Descripcion,
		Image:       in.Imagen,
		Active:      true,
	}
	if err := uc.repo.Create(cat); err != nil {
		return "", err
	}
	return cat.ID, nil
}

// Update reemplaza nombre, descripción, imagen y activo.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) error {
	active := true
	if in.Activo != nil {
		active = *in.Activo
	}
	return uc.repo.Update(&entity.Category{
		ID:          id,
		Name:        in.Nombre,
		Description: in.Descripcion,
		Image:       in.Imagen,
		Active:      active,
	})
}

// SetActive cambia solo el flag activo. Desactivar oculta también los productos
// de la categoría en el catálogo público.
func (uc *CategoryUseCase) SetActive(id string, active bool) error {
	return uc.repo.SetActive(id, active)
}

// Delete borrado físico.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{
			ID:          c.ID,
			Nombre:      c.Name,
			Descripcion: c.Description,
			Imagen:      c.Image,
			Activo:      c.Active,
		})
	}
	return out
}
