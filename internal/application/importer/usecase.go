package importer

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// Traducción de las categorías conocidas del feed; las no listadas pasan tal cual.
var categoryNames = map[string]string{
	"electronics":      "Electrónica",
	"jewelery":         "Joyería",
	"men's clothing":   "Ropa de Hombre",
	"women's clothing": "Ropa de Mujer",
}

var categoryDescriptions = map[string]string{
	"electronics":      "Dispositivos y accesorios electrónicos",
	"jewelery":         "Joyas y accesorios elegantes",
	"men's clothing":   "Ropa y accesorios para hombre",
	"women's clothing": "Ropa y accesorios para mujer",
}

// ImportUseCase siembra el catálogo con datos de prueba del feed externo.
// Idempotente solo por igualdad exacta de nombre: correr dos veces con el mismo
// feed no duplica nada (todo se reporta como omitido en la segunda pasada).
type ImportUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	feed         ProductFeed
	randStock    func() int64
}

// NewImportUseCase construye el job. El stock de cada producto importado es
// pseudoaleatorio en [10, 60).
func NewImportUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, feed ProductFeed) *ImportUseCase {
	return &ImportUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		feed:         feed,
		randStock:    func() int64 { return int64(rand.Intn(50) + 10) },
	}
}

// Run ejecuta la importación completa: categorías primero, luego productos.
func (uc *ImportUseCase) Run(ctx context.Context) (*dto.ImportResult, error) {
	feedCategories, err := uc.feed.Categories(ctx)
	if err != nil {
		return nil, err
	}

	// Inserta las categorías que aún no existen por nombre exacto y
	// recuerda el id local de cada categoría del feed.
	categoryIDs := make(map[string]string, len(feedCategories))
	for _, feedName := range feedCategories {
		name := feedName
		if translated, ok := categoryNames[feedName]; ok {
			name = translated
		}
		existing, err := uc.categoryRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			categoryIDs[feedName] = existing.ID
			continue
		}
		cat := &entity.Category{
			ID:          uuid.New().String(),
			Name:        name,
			Description: categoryDescriptions[feedName],
			Active:      true,
		}
		if err := uc.categoryRepo.Create(cat); err != nil {
			return nil, err
		}
		categoryIDs[feedName] = cat.ID
	}

	feedProducts, err := uc.feed.Products(ctx)
	if err != nil {
		return nil, err
	}

	imported, skipped := 0, 0
	for _, fp := range feedProducts {
		existing, err := uc.productRepo.GetByName(fp.Title)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			skipped++
			continue
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			Name:        fp.Title,
			Description: fp.Description,
			Price:       fp.Price,
			Stock:       uc.randStock(),
			Image:       fp.Image,
			CategoryID:  categoryIDs[fp.Category],
			Active:      true,
			Featured:    false,
			CreatedAt:   time.Now(),
		}
		if err := uc.productRepo.Create(product); err != nil {
			return nil, err
		}
		imported++
	}

	return &dto.ImportResult{
		Mensaje:             "Importación completada",
		ProductosImportados: imported,
		ProductosOmitidos:   skipped,
		CategoriasCreadas:   len(categoryIDs),
	}, nil
}
